// Package app wires the school's dependencies for the CLI.
//
// It reads Config from the environment (optionally a .env file), builds the
// in-memory store and the services on top of it, and exposes them through
// the Registry struct that the interactive shell drives.
package app
