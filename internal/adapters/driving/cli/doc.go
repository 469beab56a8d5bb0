// Package cli provides the repolist command line interface.
//
// Commands are package-level cobra commands registered on rootCmd in init.
// Services are built lazily from the TOML config store the first time a
// command needs them; tests replace them through the package variables.
package cli
