package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"resloader-generator/internal/errors"
	"resloader-generator/internal/pipeline"
)

// errStale is returned by check when the output needs regenerating.
var errStale = errors.New("generated class is out of date")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] <strings.xml>...",
		Short: "Check whether the generated class is up to date",
		Long: `Check whether the generated class is at least as new as every input,
without writing anything.

Exit codes:
  0 - up to date
  1 - out of date (or missing)
  2 - usage error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(args)
			if err != nil {
				return err
			}

			status, err := pipeline.Check(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if !status.UpToDate {
				fmt.Fprintf(cmd.OutOrStdout(), "✗ %s is out of date\n", status.Path)
				return errStale
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", status.Path)

			return nil
		},
	}
}
