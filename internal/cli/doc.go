// Package cli defines the Cobra command tree for the vuedj CLI. Each file
// registers a group of commands with the root command. Commands delegate to
// the toolchain, project and django packages and only handle flag parsing,
// status lines and exit codes.
package cli
