package main

import (
	"fmt"
	"io"

	inquiry "github.com/itsatony/go-inquiry"
)

func runVersion(stdout io.Writer) int {
	fmt.Fprintf(stdout, FmtVersionLine, CLIName, inquiry.Version)
	return ExitCodeSuccess
}
