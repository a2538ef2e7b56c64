package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jxsl13/attr-diff/config"
	"github.com/jxsl13/attr-diff/report"
	"github.com/jxsl13/attr-diff/walk"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attr-diff [flags] <left> <right>",
		Short: "compare ownership, type and permissions of two directory trees",
		Long: `attr-diff walks the left tree and reports every entry whose type, owner,
group or permission bits differ from the entry at the same relative path in
the right tree. With -R it additionally reports entries that only exist in
the right tree. File contents are never read.

Archives (tar, tar.gz, tar.xz, zip, 7z, rpm) may be used as roots.`,
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), args)
			if err != nil {
				return err
			}
			// from here on errors are not caused by wrong usage
			cmd.SilenceUsage = true

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := logger.WithContext(cmd.Context())
			return run(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	config.RegisterFlags(cmd.Flags(), config.Default())
	cmd.Flags().BoolP("version", "V", false, "print the version and exit")
	cmd.SetVersionTemplate("attr-diff {{.Version}}\n")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	var (
		sinks   []report.Sink
		closers []func() error
		summary *report.Summary
	)

	switch cfg.Format {
	case config.FormatYAML:
		y := report.NewYAML(stdout)
		sinks = append(sinks, y)
		closers = append(closers, y.Close)
	default:
		sinks = append(sinks, report.NewText(stdout, stderr, cfg.NoColor))
	}

	if cfg.Summary {
		summary = report.NewSummary()
		sinks = append(sinks, summary)
	}

	err := walk.Run(ctx, cfg, report.Multi(sinks...))

	for _, c := range closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}

	if summary != nil && err == nil {
		fmt.Fprintln(stdout)
		summary.Render(stdout)
	}
	return err
}
