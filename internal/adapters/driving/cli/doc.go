// Package cli is the cobra driving adapter for vecdemo.
//
// The root command runs the demo. Subcommands:
//   - version: Print the build version
package cli
