// Package log provides simple leveled logging for autoport.
//
// It implements a lightweight logger with colored console output and four
// levels: DEBUG, INFO, WARN and ERROR. DEBUG messages are only emitted after
// SetVerbose(true), which the CLI wires to the -verbose flag.
//
// Error output goes to stderr, everything else to stdout. Fatalf logs at the
// ERROR level and exits the process with code 1; it is only meant to be called
// from the main package.
package log
