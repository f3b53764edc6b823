package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack Web API used to build the
// directory. *slack.Client satisfies it, as does the service wrapper.
type SlackClient interface {
	// GetConversationsContext lists channels (conversations.list)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)

	// GetUsersContext lists workspace members (users.list)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
}
