package main

import (
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// maxprocs runs before command flags are parsed, so -v is detected by hand.
	verbose := slices.ContainsFunc(os.Args[1:], func(a string) bool {
		return a == "-v" || a == "--verbose"
	})
	log := newLogger(env.Stderr, commonFlags{verbose: verbose})

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	os.Exit(runMain(os.Args, env))
}
