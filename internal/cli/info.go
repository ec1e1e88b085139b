package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InfoReport summarizes one matrix file.
type InfoReport struct {
	Path    string  `json:"path"    yaml:"path"`
	Rows    int     `json:"rows"    yaml:"rows"`
	Cols    int     `json:"cols"    yaml:"cols"`
	NNZ     int     `json:"nnz"     yaml:"nnz"`
	Density float64 `json:"density" yaml:"density"`
}

func (r InfoReport) String() string {
	return fmt.Sprintf("path:    %s\nshape:   %dx%d\nnnz:     %d\ndensity: %.4f", r.Path, r.Rows, r.Cols, r.NNZ, r.Density)
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info <file>",
		Short:         "Show the shape and fill of a matrix file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, cmd, args[0])
		},
	}
}

func runInfo(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := opts.formatter(cmd)

	m, err := loadMatrix(opts, path)
	if err != nil {
		return failLoad(formatter, err)
	}

	report := InfoReport{Path: path, Rows: m.Rows(), Cols: m.Cols(), NNZ: m.NNZ()}
	if m.Rows() > 0 && m.Cols() > 0 {
		// float64 keeps the denominator finite when rows*cols overflows int.
		report.Density = float64(m.NNZ()) / (float64(m.Rows()) * float64(m.Cols()))
	}

	return formatter.Success(report)
}
