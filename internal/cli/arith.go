package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsemat/matrix"
)

// BinaryOp is the signature shared by matrix.Add, matrix.Sub and matrix.Mul.
type BinaryOp func(a, b *matrix.Sparse, opts ...matrix.Option) (*matrix.Sparse, error)

// ArithOptions holds flags for add/sub/mul.
type ArithOptions struct {
	*RootOptions
	Output string
}

// ResultReport describes a computed matrix.
type ResultReport struct {
	Op      string `json:"op"                yaml:"op"`
	Rows    int    `json:"rows"              yaml:"rows"`
	Cols    int    `json:"cols"              yaml:"cols"`
	NNZ     int    `json:"nnz"               yaml:"nnz"`
	Output  string `json:"output,omitempty"  yaml:"output,omitempty"`
	Encoded string `json:"encoded,omitempty" yaml:"encoded,omitempty"`
}

func (r ResultReport) String() string {
	return fmt.Sprintf("Result written to %s", r.Output)
}

// NewArithCommand creates a command applying op to two matrix files.
func NewArithCommand(rootOpts *RootOptions, name, short string, op BinaryOp, aliases ...string) *cobra.Command {
	opts := &ArithOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     name + " <lhs-file> <rhs-file>",
		Aliases: aliases,
		Short:   short,
		Long: fmt.Sprintf(`%s.

Both files are decoded, combined, and the result is written in the same
text format to --output, or to stdout when --output is not given.`, short),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(opts, cmd, name, op, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "result file (default: stdout)")

	return cmd
}

func runArith(opts *ArithOptions, cmd *cobra.Command, name string, op BinaryOp, lhsPath, rhsPath string) error {
	formatter := opts.formatter(cmd)

	lhs, rhs, err := loadOperands(opts.RootOptions, lhsPath, rhsPath)
	if err != nil {
		return failLoad(formatter, err)
	}

	result, err := op(lhs, rhs, matrix.WithLogger(opts.Logger))
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return fail(formatter, ExitFailure, ErrCodeDimension,
				fmt.Errorf("cannot %s %s and %s: %w", name, lhs.Shape(), rhs.Shape(), err))
		}
		return fail(formatter, ExitCommandError, ErrCodeGeneric, err)
	}

	report := ResultReport{Op: name, Rows: result.Rows(), Cols: result.Cols(), NNZ: result.NNZ(), Output: opts.Output}
	if opts.Output == "" {
		if opts.Format == "text" {
			_, err = result.WriteTo(cmd.OutOrStdout())
			return err
		}
		report.Encoded = result.Encode()
		return formatter.Success(report)
	}

	if err := result.SaveFile(opts.Output); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeWriteFailed, err)
	}
	opts.Logger.Debug("result written", slog.String("path", opts.Output), slog.Int("nnz", result.NNZ()))

	return formatter.Success(report)
}

// loadOperands decodes both files concurrently. Each decode owns its matrix.
func loadOperands(opts *RootOptions, lhsPath, rhsPath string) (*matrix.Sparse, *matrix.Sparse, error) {
	paths := [2]string{lhsPath, rhsPath}
	var loaded [2]*matrix.Sparse

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			m, err := loadMatrix(opts, path)
			if err != nil {
				return err
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return loaded[0], loaded[1], nil
}

// loadMatrix decodes one file and logs its shape.
func loadMatrix(opts *RootOptions, path string) (*matrix.Sparse, error) {
	m, err := matrix.LoadFile(path, opts.decodeOptions()...)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("matrix loaded",
		slog.String("path", path),
		slog.String("shape", m.Shape().String()),
		slog.Int("nnz", m.NNZ()),
	)

	return m, nil
}

// failLoad maps a load error to its CLI error code.
func failLoad(formatter *OutputFormatter, err error) error {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, matrix.ErrFormat), errors.Is(err, matrix.ErrOutOfRange):
		return fail(formatter, ExitCommandError, ErrCodeFormat, err)
	case errors.As(err, &pathErr):
		return fail(formatter, ExitCommandError, ErrCodeNotFound, err)
	default:
		return fail(formatter, ExitCommandError, ErrCodeGeneric, err)
	}
}
