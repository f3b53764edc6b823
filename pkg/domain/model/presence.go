package model

// PresenceStatus represents the online state of a member
type PresenceStatus string

const (
	PresenceActive       PresenceStatus = "active"
	PresenceAway         PresenceStatus = "away"
	PresenceDoNotDisturb PresenceStatus = "dnd"
	PresenceOffline      PresenceStatus = "offline"
)

// String returns the string representation of the status
func (s PresenceStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s PresenceStatus) IsValid() bool {
	switch s {
	case PresenceActive, PresenceAway, PresenceDoNotDisturb, PresenceOffline:
		return true
	default:
		return false
	}
}
