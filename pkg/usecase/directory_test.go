package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackline/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/slackline/pkg/domain/model"
	"github.com/secmon-lab/slackline/pkg/domain/types"
	"github.com/secmon-lab/slackline/pkg/usecase"
	"github.com/slack-go/slack"
)

func sampleUsers() []slack.User {
	return []slack.User{
		{
			ID:       "U001",
			Name:     "ada",
			RealName: "Ada Lovelace",
			Profile: slack.UserProfile{
				RealName: "Ada Lovelace",
				Email:    "ada@x.io",
			},
		},
		{
			ID:       "U002",
			Name:     "grace",
			RealName: "Grace Hopper",
			Profile: slack.UserProfile{
				RealName: "Grace Hopper",
				Phone:    "555-1234",
				Image512: "http://x/g.png",
			},
		},
	}
}

func newSlackMock(users []slack.User) *mocks.SlackClientMock {
	return &mocks.SlackClientMock{
		GetUsersContextFunc: func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
			return users, nil
		},
		GetConversationsContextFunc: func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
			ch := slack.Channel{}
			ch.ID = "C001"
			ch.Name = "general"
			return []slack.Channel{ch}, "", nil
		},
	}
}

func mustRunConfig(t *testing.T, channel, format string) *model.RunConfig {
	t.Helper()
	cfg, err := model.NewRunConfig("xoxb-test", channel, format)
	gt.NoError(t, err)
	return cfg
}

func TestDirectoryExport(t *testing.T) {
	ctx := context.Background()

	t.Run("Export JSON without channel", func(t *testing.T) {
		slackClient := newSlackMock(sampleUsers())
		uc := usecase.NewDirectory(slackClient)

		var buf bytes.Buffer
		err := uc.Export(ctx, mustRunConfig(t, "", "json"), &buf)
		gt.NoError(t, err)

		var entries []model.DirectoryEntry
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
		gt.Equal(t, len(entries), 2)
		gt.Equal(t, entries[0].Handle, "ada")
		gt.Equal(t, entries[1].Handle, "grace")

		gt.Equal(t, len(slackClient.GetUsersContextCalls()), 1)
		gt.Equal(t, len(slackClient.GetConversationsContextCalls()), 0)
	})

	t.Run("Channel triggers channel list but does not filter", func(t *testing.T) {
		slackClient := newSlackMock(sampleUsers())
		uc := usecase.NewDirectory(slackClient)

		var buf bytes.Buffer
		err := uc.Export(ctx, mustRunConfig(t, "#random", "csv"), &buf)
		gt.NoError(t, err)

		calls := slackClient.GetConversationsContextCalls()
		gt.Equal(t, len(calls), 1)
		gt.True(t, calls[0].Params.ExcludeArchived)
		gt.Equal(t, len(slackClient.GetUsersContextCalls()), 1)

		// header + two members, although #random is not listed
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		gt.Equal(t, len(lines), 3)
	})

	t.Run("Table scenario", func(t *testing.T) {
		uc := usecase.NewDirectory(newSlackMock(sampleUsers()))

		var buf bytes.Buffer
		gt.NoError(t, uc.Export(ctx, mustRunConfig(t, "", "table"), &buf))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		gt.Equal(t, len(lines), 3)
		gt.True(t, strings.HasPrefix(lines[1], "Ada Lovelace"))
		gt.True(t, strings.HasPrefix(lines[2], "Grace Hopper"))
	})

	t.Run("Users list failure", func(t *testing.T) {
		slackClient := &mocks.SlackClientMock{
			GetUsersContextFunc: func(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error) {
				return nil, errors.New("invalid_auth")
			},
		}
		uc := usecase.NewDirectory(slackClient)

		var buf bytes.Buffer
		err := uc.Export(ctx, mustRunConfig(t, "", "table"), &buf)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstreamRequestFailed)).True()
		gt.S(t, err.Error()).Contains("invalid_auth")
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("Channel list follows the cursor", func(t *testing.T) {
		slackClient := newSlackMock(sampleUsers())
		slackClient.GetConversationsContextFunc = func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
			ch := slack.Channel{}
			if params.Cursor == "" {
				ch.ID, ch.Name = "C001", "general"
				return []slack.Channel{ch}, "next-page", nil
			}
			ch.ID, ch.Name = "C002", "random"
			return []slack.Channel{ch}, "", nil
		}
		uc := usecase.NewDirectory(slackClient)

		var buf bytes.Buffer
		gt.NoError(t, uc.Export(ctx, mustRunConfig(t, "#random", "json"), &buf))

		calls := slackClient.GetConversationsContextCalls()
		gt.Equal(t, len(calls), 2)
		gt.Equal(t, calls[0].Params.Cursor, "")
		gt.Equal(t, calls[1].Params.Cursor, "next-page")
		gt.True(t, calls[1].Params.ExcludeArchived)
		gt.Equal(t, len(slackClient.GetUsersContextCalls()), 1)
	})

	t.Run("Channel list failure aborts before users list", func(t *testing.T) {
		slackClient := newSlackMock(sampleUsers())
		slackClient.GetConversationsContextFunc = func(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
			return nil, "", errors.New("missing_scope")
		}
		uc := usecase.NewDirectory(slackClient)

		var buf bytes.Buffer
		err := uc.Export(ctx, mustRunConfig(t, "general", "json"), &buf)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagUpstreamRequestFailed)).True()
		gt.Equal(t, len(slackClient.GetUsersContextCalls()), 0)
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("Malformed member produces no output", func(t *testing.T) {
		users := sampleUsers()
		users = append(users, slack.User{
			ID:      "U003",
			Name:    "anon",
			Profile: slack.UserProfile{Email: "anon@x.io"},
		})
		uc := usecase.NewDirectory(newSlackMock(users))

		for _, format := range model.AllOutputFormats() {
			var buf bytes.Buffer
			err := uc.Export(ctx, mustRunConfig(t, "", format.String()), &buf)
			gt.Error(t, err)
			gt.B(t, goerr.HasTag(err, model.ErrTagMalformedMember)).True()
			gt.Equal(t, buf.Len(), 0)
		}
	})

	t.Run("Member without profile produces no output", func(t *testing.T) {
		users := sampleUsers()
		users = append(users, slack.User{ID: "U004", Name: "ghost", RealName: "Ghost"})
		uc := usecase.NewDirectory(newSlackMock(users))

		var buf bytes.Buffer
		err := uc.Export(ctx, mustRunConfig(t, "", "json"), &buf)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedMember)).True()
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("Empty workspace", func(t *testing.T) {
		uc := usecase.NewDirectory(newSlackMock(nil))

		var buf bytes.Buffer
		gt.NoError(t, uc.Export(ctx, mustRunConfig(t, "", "json"), &buf))
		gt.Equal(t, buf.String(), "[]\n")
	})
}

func TestDirectoryNormalize(t *testing.T) {
	ctx := context.Background()

	t.Run("Order is preserved across workers", func(t *testing.T) {
		users := make([]slack.User, 50)
		for i := range users {
			users[i] = slack.User{
				ID:       fmt.Sprintf("U%03d", i),
				Name:     fmt.Sprintf("user%d", i),
				RealName: fmt.Sprintf("User %d", i),
				Profile:  slack.UserProfile{RealName: fmt.Sprintf("User %d", i)},
			}
		}

		uc := usecase.NewDirectory(newSlackMock(users), usecase.WithWorkers(4))
		entries, err := uc.Normalize(ctx, users)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 50)
		for i, e := range entries {
			gt.Equal(t, e.Handle, fmt.Sprintf("user%d", i))
		}
	})

	t.Run("Cancellation is not a malformed member", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		uc := usecase.NewDirectory(newSlackMock(sampleUsers()))
		entries, err := uc.Normalize(cancelled, sampleUsers())
		gt.Error(t, err)
		gt.True(t, entries == nil)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedMember)).False()
	})
}

func TestNormalizeMember(t *testing.T) {
	t.Run("Optional fields pass through", func(t *testing.T) {
		users := sampleUsers()

		ada, err := usecase.NormalizeMember(users[0])
		gt.NoError(t, err)
		gt.Equal(t, ada.Name, "Ada Lovelace")
		gt.Equal(t, ada.Handle, "ada")
		gt.Equal(t, ada.Email, "ada@x.io")
		gt.Equal(t, ada.PhoneNumber, "")
		gt.Equal(t, ada.PictureURL, "")
		gt.Equal(t, ada.PresenceStatus, model.PresenceOffline)

		grace, err := usecase.NormalizeMember(users[1])
		gt.NoError(t, err)
		gt.Equal(t, grace.Email, "")
		gt.Equal(t, grace.PhoneNumber, "555-1234")
		gt.Equal(t, grace.PictureURL, "http://x/g.png")
	})

	t.Run("Presence is always offline", func(t *testing.T) {
		user := sampleUsers()[0]
		user.Presence = "active"
		entry, err := usecase.NormalizeMember(user)
		gt.NoError(t, err)
		gt.Equal(t, entry.PresenceStatus, model.PresenceOffline)
	})

	t.Run("Display name has no fallback", func(t *testing.T) {
		user := sampleUsers()[0]
		user.RealName = ""
		user.Profile.DisplayName = "ada"
		_, err := usecase.NormalizeMember(user)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedMember)).True()
		gt.V(t, goerr.Values(err)["field"]).Equal("name")
	})

	t.Run("Missing handle", func(t *testing.T) {
		user := sampleUsers()[0]
		user.Name = ""
		_, err := usecase.NormalizeMember(user)
		gt.Error(t, err)
		gt.V(t, goerr.Values(err)["field"]).Equal("handle")
	})

	t.Run("Missing profile", func(t *testing.T) {
		_, err := usecase.NormalizeMember(slack.User{ID: "U009", Name: "x", RealName: "X"})
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagMalformedMember)).True()
		gt.V(t, goerr.Values(err)["field"]).Equal("profile")
		gt.V(t, goerr.Values(err)["id"]).Equal(types.SlackUserID("U009"))
	})

	t.Run("Profile with only first and last name", func(t *testing.T) {
		entry, err := usecase.NormalizeMember(slack.User{
			ID:       "U010",
			Name:     "ada",
			RealName: "Ada L",
			Profile:  slack.UserProfile{FirstName: "Ada", LastName: "L"},
		})
		gt.NoError(t, err)
		gt.Equal(t, entry.Name, "Ada L")
		gt.Equal(t, entry.Email, "")
	})

	t.Run("Profile with only custom fields", func(t *testing.T) {
		user := slack.User{ID: "U011", Name: "grace", RealName: "Grace"}
		user.Profile.Fields.SetMap(map[string]slack.UserProfileCustomField{
			"Xf01": {Value: "Engineering"},
		})
		_, err := usecase.NormalizeMember(user)
		gt.NoError(t, err)
	})
}
