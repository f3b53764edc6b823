package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/types"
)

// RunConfig is the validated configuration of one export run. It is
// built once by NewRunConfig and never modified afterwards.
type RunConfig struct {
	apiToken string
	channel  string
	format   OutputFormat
}

// NewRunConfig validates the resolved flag values. The token must
// already include the environment fallback.
func NewRunConfig(apiToken, channel, outputToken string) (*RunConfig, error) {
	if apiToken == "" {
		return nil, goerr.New("Slack API token is required. Please provide --key or SLACK_API_KEY",
			goerr.T(ErrTagMissingCredential))
	}

	format, err := ParseOutputFormat(outputToken)
	if err != nil {
		return nil, err
	}

	return &RunConfig{
		apiToken: apiToken,
		channel:  channel,
		format:   format,
	}, nil
}

// APIToken returns the Slack API token
func (c *RunConfig) APIToken() string {
	return c.apiToken
}

// Channel returns the channel scope, empty when not set
func (c *RunConfig) Channel() types.ChannelName {
	return types.ChannelName(c.channel)
}

// HasChannel reports whether a channel scope was given
func (c *RunConfig) HasChannel() bool {
	return c.channel != ""
}

// Format returns the output format
func (c *RunConfig) Format() OutputFormat {
	return c.format
}

// LogValue returns structured log value
func (c RunConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_token", c.apiToken != ""),
		slog.String("channel", c.channel),
		slog.String("format", c.format.String()),
	)
}
