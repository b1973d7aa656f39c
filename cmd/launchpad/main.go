// Package main is the entry point for the launchpad CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Create dependency injection container
	container := app.New(app.DefaultConfig())
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
