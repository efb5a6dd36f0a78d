// Package eapi implements the JSON-RPC transport to the switch command
// execution endpoint.
//
// The switch exposes a "runCmds" method that takes an ordered list of CLI
// commands and returns one result per command, either as structured JSON or
// as raw text. The client supports two endpoints: the local unix socket
// (when the tool runs on the switch itself) and a remote HTTPS endpoint in
// the "user:pass@host" form.
//
// All interactions are privilege-elevated: every batch is prefixed with an
// "enable" command before being sent, and the enable result occupies index 0
// of the returned result slice.
package eapi
