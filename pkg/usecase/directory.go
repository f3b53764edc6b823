package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/interfaces"
	"github.com/secmon-lab/slackline/pkg/domain/model"
	"github.com/secmon-lab/slackline/pkg/domain/types"
	"github.com/secmon-lab/slackline/pkg/service/render"
	"github.com/secmon-lab/slackline/pkg/utils/async"
	"github.com/slack-go/slack"
)

// DirectoryConfig holds configuration for Directory use case
type DirectoryConfig struct {
	workers int
}

// DirectoryOption is a functional option for configuring Directory
type DirectoryOption func(*DirectoryConfig)

// WithWorkers bounds the number of concurrent normalization workers.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) DirectoryOption {
	return func(c *DirectoryConfig) {
		c.workers = n
	}
}

// Directory exports the workspace member directory
type Directory struct {
	slackClient interfaces.SlackClient
	config      *DirectoryConfig
}

// NewDirectory creates a new Directory use case
func NewDirectory(slackClient interfaces.SlackClient, opts ...DirectoryOption) *Directory {
	config := &DirectoryConfig{}
	for _, opt := range opts {
		opt(config)
	}

	return &Directory{
		slackClient: slackClient,
		config:      config,
	}
}

// Export fetches, normalizes and renders the directory. The document is
// written to w only after every stage has succeeded.
func (d *Directory) Export(ctx context.Context, cfg *model.RunConfig, w io.Writer) error {
	logger := ctxlog.From(ctx)

	users, err := d.FetchMembers(ctx, cfg)
	if err != nil {
		return err
	}

	entries, err := d.Normalize(ctx, users)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, cfg.Format(), entries); err != nil {
		return goerr.Wrap(err, "failed to render directory",
			goerr.V("format", cfg.Format()))
	}

	if _, err := buf.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to write directory output")
	}

	logger.Info("Directory exported",
		"members", len(entries),
		"format", cfg.Format())
	return nil
}

// FetchMembers lists workspace members. When a channel is configured the
// channel list is requested as well, but it does not filter members.
func (d *Directory) FetchMembers(ctx context.Context, cfg *model.RunConfig) ([]slack.User, error) {
	logger := ctxlog.From(ctx)

	if cfg.HasChannel() {
		if err := d.checkChannel(ctx, cfg.Channel()); err != nil {
			return nil, err
		}
	}

	users, err := d.slackClient.GetUsersContext(ctx, slack.GetUsersOptionPresence(false))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch workspace members",
			goerr.T(model.ErrTagUpstreamRequestFailed),
			goerr.V("method", "users.list"))
	}

	logger.Debug("Fetched workspace members", "count", len(users))
	return users, nil
}

// checkChannel walks the non-archived public channel list and reports
// whether the given channel is among them.
func (d *Directory) checkChannel(ctx context.Context, channel types.ChannelName) error {
	logger := ctxlog.From(ctx)

	var (
		channels []slack.Channel
		cursor   string
	)
	for {
		page, next, err := d.slackClient.GetConversationsContext(ctx, &slack.GetConversationsParameters{
			Cursor:          cursor,
			ExcludeArchived: true,
			Types:           []string{"public_channel"},
		})
		if err != nil {
			return goerr.Wrap(err, "failed to fetch channel list",
				goerr.T(model.ErrTagUpstreamRequestFailed),
				goerr.V("method", "conversations.list"),
				goerr.V("channel", channel))
		}
		channels = append(channels, page...)
		if next == "" {
			break
		}
		cursor = next
	}

	logger.Debug("Fetched channel list",
		"count", len(channels),
		"channel", channel)

	if findChannel(channels, channel) == nil {
		logger.Warn("Channel not found; members are not filtered by channel",
			"channel", channel)
	}
	return nil
}

// Normalize converts all members in parallel. Any malformed member
// aborts the whole run.
func (d *Directory) Normalize(ctx context.Context, users []slack.User) ([]*model.DirectoryEntry, error) {
	entries, err := async.Map(ctx, d.config.workers, users,
		func(ctx context.Context, user slack.User) (*model.DirectoryEntry, error) {
			return NormalizeMember(user)
		})
	if err != nil {
		if goerr.HasTag(err, model.ErrTagMalformedMember) {
			return nil, goerr.Wrap(err, "failed to normalize workspace members",
				goerr.T(model.ErrTagMalformedMember),
				goerr.V("members", len(users)))
		}
		return nil, goerr.Wrap(err, "failed to normalize workspace members",
			goerr.V("members", len(users)))
	}
	return entries, nil
}

// findChannel matches by channel ID or by name, with or without a
// leading '#'
func findChannel(channels []slack.Channel, channel types.ChannelName) *slack.Channel {
	name := strings.TrimPrefix(channel.String(), "#")
	id := types.ChannelID(name)
	for i := range channels {
		if types.ChannelID(channels[i].ID) == id || channels[i].Name == name {
			return &channels[i]
		}
	}
	return nil
}
