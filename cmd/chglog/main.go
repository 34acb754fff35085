package main

import (
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdout, os.Stderr, &systemCommands{})
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdout, stderr io.Writer, commands commandRunner) int {
	cfg, err := parseFlags(args)
	if err != nil {
		return usageError(stderr, err)
	}
	return release(cfg, stdout, stderr, commands)
}
