package slack

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

// DefaultAPIURL is the public Slack Web API endpoint
const DefaultAPIURL = slack.APIURL

// Service provides read access to the Slack workspace directory
type Service struct {
	client *slack.Client
}

var _ interfaces.SlackClient = (*Service)(nil)

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client: slack.New(token, options...),
	}
}

// WithAPIURL points the service at a Slack compatible endpoint
func WithAPIURL(url string) slack.Option {
	if url == "" {
		url = DefaultAPIURL
	}
	if url[len(url)-1] != '/' {
		url += "/"
	}
	return slack.OptionAPIURL(url)
}

// GetConversationsContext lists channels visible to the token
func (s *Service) GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
	channels, cursor, err := s.client.GetConversationsContext(ctx, params)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list Slack conversations")
	}
	return channels, cursor, nil
}

// GetUsersContext lists all workspace members, following the cursor until
// the last page. Any failed page, including a rate limited one, fails the
// whole listing; pages are neither retried nor returned partially.
func (s *Service) GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
	var users []slack.User

	p := s.client.GetUsersPaginated(options...)
	for page := 1; ; page++ {
		var err error
		p, err = p.Next(ctx)
		if p.Done(err) {
			break
		}
		if err != nil {
			var rateLimited *slack.RateLimitedError
			if errors.As(err, &rateLimited) {
				return nil, goerr.Wrap(err, "failed to list Slack users: rate limited",
					goerr.V("page", page),
					goerr.V("retry_after", rateLimited.RetryAfter.String()))
			}
			return nil, goerr.Wrap(err, "failed to list Slack users",
				goerr.V("page", page))
		}
		users = append(users, p.Users...)
	}

	return users, nil
}
