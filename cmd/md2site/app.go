package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// runMain dispatches the command in args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}
	cmd, rest := args[1], args[2:]

	switch cmd {
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env.Stderr)

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "clean":
		err = runClean(ctx, rest, env)
	case "watch":
		err = runWatch(ctx, rest, env)
	case "inspect":
		err = runInspect(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(env.Stderr, "interrupted")
		return ExitGeneral
	default:
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
}

// hintedError appends an actionable hint to an error message.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches hint to err. A nil err or empty hint returns err as is.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}
