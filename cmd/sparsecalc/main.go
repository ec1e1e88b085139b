// Command sparsecalc combines sparse matrix files.
//
// Usage:
//
//	sparsecalc add a.txt b.txt -o sum.txt
//	sparsecalc mul a.txt b.txt --format json
//	sparsecalc info a.txt
//
// Defaults come from SPARSECALC_* environment variables; flags override them.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
	"github.com/katalvlaran/sparsemat/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCommandError
	}
	lvl, _ := cfg.Level() // validated by Load

	level := new(slog.LevelVar)
	level.Set(lvl)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cmd := cli.NewRootCommand(cfg, logger, level)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// Flag and argument errors from cobra itself.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.ExitCommandError
		}
		return cli.GetExitCode(err)
	}

	return cli.ExitSuccess
}
