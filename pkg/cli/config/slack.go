package config

import (
	"log/slog"

	"github.com/secmon-lab/slackline/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/slackline/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	APIToken string
	APIURL   string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "Slack API token",
			Category:    "Slack",
			Sources:     cli.EnvVars("SLACK_API_KEY"),
			Destination: &s.APIToken,
		},
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API endpoint",
			Category:    "Slack",
			Value:       slackSvc.DefaultAPIURL,
			Sources:     cli.EnvVars("SLACK_API_URL"),
			Destination: &s.APIURL,
		},
	}
}

// Configure creates a Slack client. The token must have been validated
// through Export.Configure before any request is made.
func (s *Slack) Configure() interfaces.SlackClient {
	return slackSvc.New(s.APIToken, slackSvc.WithAPIURL(s.APIURL))
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_api_token", s.APIToken != ""),
		slog.String("api_url", s.APIURL),
	)
}
