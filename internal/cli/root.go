// Package cli implements the sparsecalc command tree.
//
// Commands take explicit file paths; nothing here prompts, lists
// directories or invents output names.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/config"
	"github.com/katalvlaran/sparsemat/matrix"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose       bool
	Format        string // "text" | "json" | "yaml"
	StrictBounds  bool
	MaxDenseCells int

	Logger *slog.Logger
	Level  *slog.LevelVar // raised to debug by --verbose when set
}

// NewRootCommand creates the root command. cfg supplies flag defaults; logger
// receives diagnostics (nil discards them); level, when non-nil, is the
// logger's level knob.
func NewRootCommand(cfg config.Config, logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &RootOptions{Logger: logger, Level: level}

	cmd := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Sparse integer matrix calculator",
		Long: `Load sparse matrices from the rows=/cols=/(r, c, v) text format,
combine them and write the result in the same format.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main reports errors that are not ExitErrors
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, config.ValidFormats)
			}
			if opts.MaxDenseCells <= 0 {
				return fmt.Errorf("invalid max dense cells %d: must be > 0", opts.MaxDenseCells)
			}
			if opts.Verbose && opts.Level != nil {
				opts.Level.Set(slog.LevelDebug)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (text|json|yaml)")
	cmd.PersistentFlags().BoolVar(&opts.StrictBounds, "strict", cfg.StrictBounds, "reject entries outside the declared shape")
	cmd.PersistentFlags().IntVar(&opts.MaxDenseCells, "max-dense-cells", cfg.MaxDenseCells, "largest rows*cols that show will render")

	// Add subcommands
	cmd.AddCommand(NewArithCommand(opts, "add", "Add two matrices", matrix.Add))
	cmd.AddCommand(NewArithCommand(opts, "sub", "Subtract the second matrix from the first", matrix.Sub, "subtract"))
	cmd.AddCommand(NewArithCommand(opts, "mul", "Multiply two matrices", matrix.Mul, "multiply"))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// decodeOptions maps global flags to decoder options.
func (o *RootOptions) decodeOptions() []matrix.Option {
	if o.StrictBounds {
		return []matrix.Option{matrix.WithStrictBounds()}
	}
	return nil
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}
