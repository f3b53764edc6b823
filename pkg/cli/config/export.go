package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
	"github.com/secmon-lab/slackline/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Export holds directory export configuration
type Export struct {
	Channel string
	Output  string
	Workers int
}

// Flags returns CLI flags for Export configuration
func (e *Export) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "channel",
			Aliases:     []string{"c"},
			Usage:       "Limit the export to a single Slack channel (accepted, members are not filtered)",
			Category:    "Export",
			Destination: &e.Channel,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output format (table, json, html, csv, markdown, md, yaml, yml)",
			Category:    "Export",
			Value:       model.DefaultOutputFormat.String(),
			Destination: &e.Output,
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Number of normalization workers (0 = number of CPUs)",
			Category:    "Export",
			Value:       0,
			Sources:     cli.EnvVars("SLACKLINE_WORKERS"),
			Destination: &e.Workers,
		},
	}
}

// Configure resolves the run configuration. The token comes from the
// Slack configuration, which already applied the environment fallback.
func (e *Export) Configure(slackCfg *Slack) (*model.RunConfig, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return model.NewRunConfig(slackCfg.APIToken, e.Channel, e.Output)
}

// Options returns use case options derived from the configuration
func (e *Export) Options() []usecase.DirectoryOption {
	return []usecase.DirectoryOption{
		usecase.WithWorkers(e.Workers),
	}
}

// Validate validates the export configuration
func (e *Export) Validate() error {
	if e.Workers < 0 {
		return goerr.New("workers must not be negative",
			goerr.V("workers", e.Workers))
	}
	return nil
}

// LogValue returns structured log value
func (e Export) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("channel", e.Channel),
		slog.String("output", e.Output),
		slog.Int("workers", e.Workers),
	)
}
