package models

import "time"

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusExpired  = "expired"
)

// Contact is a person notified of check-ins. Invite status transitions are
// driven by remote acceptance.
type Contact struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Relation     string     `json:"relation"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	InviteToken  string     `json:"inviteToken,omitempty"`
	InviteStatus string     `json:"inviteStatus,omitempty"`
	InviteSentAt *time.Time `json:"inviteSentAt,omitempty"`
	DeviceToken  string     `json:"deviceToken,omitempty"`
	UserID       string     `json:"userId,omitempty"`
}

func (contact Contact) clone() Contact {
	copied := contact
	if contact.InviteSentAt != nil {
		sentAt := *contact.InviteSentAt
		copied.InviteSentAt = &sentAt
	}
	return copied
}
