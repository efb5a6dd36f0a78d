// Package commands implements CLI command handlers for autoport.
//
// Each subcommand implements the Runner interface:
//   - Init(): parse arguments, load settings and the rule table
//   - Run(): execute the command against the switch
//   - Name(): return the command name for routing
//
// # Available Commands
//
//   - apply: resolve a rule for the interface and push its configuration if
//     it differs from the running config
//   - check: same decision as apply, but read-only
//   - resolve: print the rule that would be selected and which pattern won
//   - validate: parse the rule file and print the table, no switch access
//
// Commands are thin wrappers: the decision logic lives in the portconf and
// rules packages.
package commands
