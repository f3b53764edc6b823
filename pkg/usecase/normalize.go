package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
	"github.com/secmon-lab/slackline/pkg/domain/types"
	"github.com/slack-go/slack"
)

// NormalizeMember maps one Slack member to a DirectoryEntry. A member
// without real name, handle or profile is rejected; no fallback is
// applied. Presence is not queried and is always offline.
func NormalizeMember(user slack.User) (*model.DirectoryEntry, error) {
	if !hasProfile(&user.Profile) {
		return nil, goerr.New("member has no profile",
			goerr.T(model.ErrTagMalformedMember),
			goerr.V("field", "profile"),
			goerr.V("id", types.SlackUserID(user.ID)))
	}

	entry := &model.DirectoryEntry{
		Name:           user.RealName,
		Handle:         user.Name,
		Email:          user.Profile.Email,
		PhoneNumber:    user.Profile.Phone,
		PictureURL:     user.Profile.Image512,
		PresenceStatus: model.PresenceOffline,
	}

	if err := entry.Validate(); err != nil {
		return nil, goerr.Wrap(err, "failed to normalize member",
			goerr.T(model.ErrTagMalformedMember),
			goerr.V("id", types.SlackUserID(user.ID)))
	}
	return entry, nil
}

// hasProfile reports whether users.list returned a profile object for the
// member. slack.User embeds the profile by value, so an absent object
// decodes to a profile with every field empty.
func hasProfile(p *slack.UserProfile) bool {
	fields := []string{
		p.FirstName,
		p.LastName,
		p.RealName,
		p.RealNameNormalized,
		p.DisplayName,
		p.DisplayNameNormalized,
		p.AvatarHash,
		p.Email,
		p.Skype,
		p.Phone,
		p.Image24,
		p.Image32,
		p.Image48,
		p.Image72,
		p.Image192,
		p.Image512,
		p.ImageOriginal,
		p.Title,
		p.BotID,
		p.ApiAppID,
		p.StatusText,
		p.StatusEmoji,
		p.Team,
	}
	for _, f := range fields {
		if f != "" {
			return true
		}
	}

	return p.StatusExpiration != 0 ||
		len(p.StatusEmojiDisplayInfo) > 0 ||
		p.Fields.Len() > 0
}
