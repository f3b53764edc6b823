package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// NotAvailable is displayed in place of an absent optional field
const NotAvailable = "N/A"

// DirectoryEntry is one normalized workspace member ready for rendering.
// Optional fields are empty when the upstream profile omits them.
type DirectoryEntry struct {
	Name           string         `json:"name" yaml:"name"`
	Handle         string         `json:"handle" yaml:"handle"`
	Email          string         `json:"email,omitempty" yaml:"email,omitempty"`
	PhoneNumber    string         `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	PictureURL     string         `json:"picture_url,omitempty" yaml:"picture_url,omitempty"`
	PresenceStatus PresenceStatus `json:"presence_status" yaml:"presence_status"`
}

// Validate checks the required fields of the entry
func (e *DirectoryEntry) Validate() error {
	if e.Name == "" {
		return goerr.New("member has no display name",
			goerr.T(ErrTagMalformedMember),
			goerr.V("field", "name"),
			goerr.V("handle", e.Handle))
	}
	if e.Handle == "" {
		return goerr.New("member has no handle",
			goerr.T(ErrTagMalformedMember),
			goerr.V("field", "handle"),
			goerr.V("name", e.Name))
	}
	if !e.PresenceStatus.IsValid() {
		return goerr.New("invalid presence status",
			goerr.T(ErrTagMalformedMember),
			goerr.V("field", "presence_status"),
			goerr.V("status", e.PresenceStatus))
	}
	return nil
}

// DisplayEmail returns the email or N/A
func (e *DirectoryEntry) DisplayEmail() string {
	return orNotAvailable(e.Email)
}

// DisplayPhoneNumber returns the phone number or N/A
func (e *DirectoryEntry) DisplayPhoneNumber() string {
	return orNotAvailable(e.PhoneNumber)
}

// DisplayPictureURL returns the picture URL or N/A
func (e *DirectoryEntry) DisplayPictureURL() string {
	return orNotAvailable(e.PictureURL)
}

// LogValue returns structured log value
func (e DirectoryEntry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("handle", e.Handle),
		slog.String("name", e.Name),
		slog.Bool("has_email", e.Email != ""),
		slog.Bool("has_phone", e.PhoneNumber != ""),
		slog.Bool("has_picture", e.PictureURL != ""),
	)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
