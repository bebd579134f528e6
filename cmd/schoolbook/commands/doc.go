// Package commands defines the schoolbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell   Run the interactive school menu (default)
//   - demo    Print the sample school once and exit
//
// # Implementation
//
// The root command loads configuration from the environment, an optional
// .env file and flags, builds the logger and a fresh in-memory registry
// before any subcommand runs. All state lives for the duration of one run.
package commands
