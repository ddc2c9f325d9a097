package services

import (
	"math"
	"time"

	"github.com/imok-app/imok/internal/models"
)

// HasActiveSubscription is the entitlement gate. Receivers only observe
// others' check-ins and are never gated; otherwise a paid subscription wins,
// then a trial whose end is strictly in the future. Time-dependent, so it is
// re-evaluated on every access decision.
func HasActiveSubscription(state models.AppState, now time.Time) bool {
	if state.UserRole == models.RoleReceiver {
		return true
	}

	subscription := state.Subscription
	if subscription.IsActive {
		return true
	}
	if subscription.IsTrialing && subscription.TrialEndsAt != nil {
		return subscription.TrialEndsAt.After(now)
	}
	return false
}

// TrialDaysLeft reports the whole days remaining in the trial, never negative.
func TrialDaysLeft(subscription models.SubscriptionStatus, now time.Time) int {
	if subscription.TrialEndsAt == nil {
		return 0
	}
	remaining := subscription.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// ActivateSubscription marks the entitlement as paid from now on.
func ActivateSubscription(state models.AppState, now time.Time) (models.AppState, error) {
	subscribedAt := now
	state.Subscription = models.SubscriptionStatus{
		IsActive:     true,
		IsTrialing:   false,
		SubscribedAt: &subscribedAt,
	}
	return state, nil
}

// StartTrial begins a fresh trial window from now.
func StartTrial(state models.AppState, now time.Time) (models.AppState, error) {
	state.Subscription = models.DefaultSubscription(now)
	return state, nil
}
