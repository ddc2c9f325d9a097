package models

import "time"

// SubscriptionStatus is the entitlement snapshot. At most one of
// isActive/isTrialing is the operative grant; an active flag always overrides
// trial expiry.
type SubscriptionStatus struct {
	IsActive     bool       `json:"isActive"`
	IsTrialing   bool       `json:"isTrialing"`
	TrialEndsAt  *time.Time `json:"trialEndsAt,omitempty"`
	SubscribedAt *time.Time `json:"subscribedAt,omitempty"`
}

func (subscription SubscriptionStatus) clone() SubscriptionStatus {
	copied := subscription
	if subscription.TrialEndsAt != nil {
		trialEnd := *subscription.TrialEndsAt
		copied.TrialEndsAt = &trialEnd
	}
	if subscription.SubscribedAt != nil {
		subscribedAt := *subscription.SubscribedAt
		copied.SubscribedAt = &subscribedAt
	}
	return copied
}
