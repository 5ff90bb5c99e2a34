// Package memory provides in-memory implementations of driven port interfaces.
// The CLI uses them when no config file is given, and tests use them everywhere.
package memory
