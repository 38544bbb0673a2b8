// Package main provides the entry point for the cli application.
//
// This application prints a greeting for an optionally supplied name,
// demonstrating best practices for CLI applications using cobra, logrus,
// and environment configuration management.
package main

import cmd "github.com/toozej/cli/cmd/cli"

// main is the entry point of the cli application.
// It delegates execution to the cmd package which handles all
// command-line interface functionality.
func main() {
	cmd.Execute()
}
