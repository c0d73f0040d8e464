// Package cli implements the resloader-generator command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resloader-generator/internal/config"
	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
	"resloader-generator/internal/pipeline"
	"resloader-generator/internal/watch"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

type options struct {
	applicationID string
	className     string
	srcDir        string
	configPath    string
	strict        bool
	watch         bool
	verbose       bool
	logJSON       bool
}

// NewRootCmd builds the root command. Generation is its default action.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "resloader-generator [flags] <strings.xml>...",
		Short: "Generate a Java accessor class from Android string resources",
		Long: `Generate a Java class exposing one public final String field per
<string> entry of the given resource files.

Entries are read from <resources><string name="...">, merged in argument order
(later files override earlier ones) and written to
<src-dir>/<package path>/<Class>.java. Nothing is written when that file is
already newer than every input.

Examples:
  resloader-generator -a com.example.app -n com.example.app.gen.Strings -s build/gen res/values/strings.xml
  resloader-generator --config resloader.yaml
  resloader-generator --config resloader.yaml --watch`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Initialize(opts.verbose, opts.logJSON)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(args)
			if err != nil {
				return err
			}

			if opts.watch {
				return runWatch(cmd.Context(), cfg)
			}

			res, err := pipeline.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d fields)\n", res.Outcome, res.Path, res.Fields)

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.applicationID, "application-id", "a", "", "Application id copied into the generated class (required)")
	flags.StringVarP(&opts.className, "class-name", "n", "", "Dotted name of the generated class, e.g. com.example.Strings (required)")
	flags.StringVarP(&opts.srcDir, "src-dir", "s", "", "Source root the package directories are created under (required)")
	flags.StringVar(&opts.configPath, "config", "", "YAML file providing any of the settings above and the input list")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when any resource file cannot be read or parsed")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Keep running and regenerate when inputs change")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err)
	})

	cmd.AddCommand(newCheckCmd(opts))

	return cmd
}

// resolve merges the config file, flags and positional inputs, then validates.
func (o *options) resolve(args []string) (*config.GenerationConfig, error) {
	cfg := &config.GenerationConfig{}

	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	cfg.Override(config.GenerationConfig{
		ApplicationID: o.applicationID,
		ClassName:     o.className,
		SrcDir:        o.srcDir,
		Inputs:        args,
		Strict:        o.strict,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runWatch(ctx context.Context, cfg *config.GenerationConfig) error {
	if _, err := pipeline.Run(ctx, cfg); err != nil {
		if errors.Is(err, errors.ErrConfig) || errors.Is(err, errors.ErrTemplate) {
			return err
		}

		logger.Logger.Errorw("generation failed", "error", err)
	}

	w, err := watch.New(cfg.Inputs, watch.DefaultDebounce, func(ctx context.Context, changed []string) {
		logger.Logger.Infow("regenerating", "changed", changed)

		if _, err := pipeline.Run(ctx, cfg); err != nil {
			logger.Logger.Errorw("generation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Logger.Infow("watching resource files", "inputs", len(cfg.Inputs))

	return w.Run(ctx)
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	logger.Sync()

	if err == nil {
		return ExitOK
	}

	return report(stderr, err)
}

func report(w io.Writer, err error) int {
	if errors.Is(err, errStale) {
		return ExitFailed
	}

	fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}

	if errors.Is(err, errors.ErrConfig) {
		fmt.Fprintln(w, "Run with --help for usage.")
		return ExitUsage
	}

	return ExitFailed
}

// Main is the entry point used by cmd/resloader-generator.
func Main(ctx context.Context) int {
	return Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
