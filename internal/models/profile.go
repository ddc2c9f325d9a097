package models

import "time"

// UserProfile identifies the checking-in user. Created once at onboarding,
// mutated by settings edits, never deleted within a session.
type UserProfile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Photo         string    `json:"photo,omitempty"`
	Timezone      string    `json:"timezone"`
	CustomMessage string    `json:"customMessage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
