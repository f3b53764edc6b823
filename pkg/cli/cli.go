package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/cli/config"
	"github.com/secmon-lab/slackline/pkg/domain/types"
	"github.com/secmon-lab/slackline/pkg/usecase"
	"github.com/secmon-lab/slackline/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

// run writes the directory to stdout and everything else to stderr
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		loggerCfg config.Logger
		slackCfg  config.Slack
		exportCfg config.Export
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:      "slackline",
		Usage:     "Export the Slack workspace member directory",
		Version:   "0.1.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: joinFlags(
			loggerCfg.Flags(),
			slackCfg.Flags(),
			exportCfg.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			l, err := loggerCfg.Configure(stderr)
			if err != nil {
				return nil, err
			}

			logger = l.With("run_id", types.NewRunID())
			return ctxlog.With(ctx, logger), nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return export(ctx, c.Root().Writer, &slackCfg, &exportCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}
		apperr.Handle(ctxlog.With(ctx, logger), stderr, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// export resolves the run configuration before any Slack request is made
func export(ctx context.Context, w io.Writer, slackCfg *config.Slack, exportCfg *config.Export) error {
	logger := ctxlog.From(ctx)

	runCfg, err := exportCfg.Configure(slackCfg)
	if err != nil {
		return err
	}

	logger.Debug("Starting directory export",
		slog.Any("slack", *slackCfg),
		slog.Any("export", *exportCfg),
		slog.Any("run", *runCfg),
	)

	directory := usecase.NewDirectory(slackCfg.Configure(), exportCfg.Options()...)
	return directory.Export(ctx, runCfg, w)
}

// joinFlags combines the flag sets of each config section
func joinFlags(sets ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, set := range sets {
		flags = append(flags, set...)
	}
	return flags
}
