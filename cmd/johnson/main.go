package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/apsp/internal/cli"
)

// main is the entrypoint for the johnson command.
func main() {
	os.Exit(exitCode(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]), os.Stderr))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return cli.Run(cfg, stdin, stdout, stderr)
}

// exitCode prints err's message to stderr and maps it to a process exit code.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(stderr, err)

	return cli.ExitFailure
}
