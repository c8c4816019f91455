// Package cli wires the analyzer to the command line: cobra commands,
// viper-backed configuration, input collection and report rendering.
package cli
