package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/matrix"
)

// DenseReport is the dense view of a matrix file.
type DenseReport struct {
	Path string    `json:"path" yaml:"path"`
	Rows int       `json:"rows" yaml:"rows"`
	Cols int       `json:"cols" yaml:"cols"`
	Data [][]int64 `json:"data" yaml:"data"`
}

// String renders the data as right-aligned columns.
func (r DenseReport) String() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, row := range r.Data {
		for _, v := range row {
			fmt.Fprint(tw, strconv.FormatInt(v, 10)+"\t")
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()

	return strings.TrimSuffix(sb.String(), "\n")
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a matrix file as a dense grid",
		Long: `Print a matrix file as a dense grid.

Rendering is refused when rows*cols exceeds --max-dense-cells.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, cmd, args[0])
		},
	}
}

func runShow(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := opts.formatter(cmd)

	m, err := loadMatrix(opts, path)
	if err != nil {
		return failLoad(formatter, err)
	}
	cells, err := matrix.CellCount(m.Rows(), m.Cols())
	if err != nil {
		code := ErrCodeTooLarge
		if m.Rows() < 0 || m.Cols() < 0 {
			code = ErrCodeInvalidInput
		}
		return fail(formatter, ExitCommandError, code,
			fmt.Errorf("%s cannot be rendered densely: %w", m.Shape(), err))
	}
	if cells > opts.MaxDenseCells {
		return fail(formatter, ExitCommandError, ErrCodeTooLarge,
			fmt.Errorf("%s has %d cells, limit is %d", m.Shape(), cells, opts.MaxDenseCells))
	}

	data, err := matrix.ToDense(m)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeInvalidInput, err)
	}

	return formatter.Success(DenseReport{Path: path, Rows: m.Rows(), Cols: m.Cols(), Data: data})
}
