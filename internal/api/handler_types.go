package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/services"
)

type Handler struct {
	store     *services.StateStore
	checkIns  *services.CheckInService
	profiles  *services.ProfileService
	contacts  *services.ContactService
	schedule  *services.ScheduleService
	notifier  *services.NotificationService
	log       *zap.Logger
	secretKey []byte
	baseURL   string
}

type Dependencies struct {
	Store     *services.StateStore
	CheckIns  *services.CheckInService
	Profiles  *services.ProfileService
	Contacts  *services.ContactService
	Schedule  *services.ScheduleService
	Notifier  *services.NotificationService
	Log       *zap.Logger
	SecretKey []byte
	BaseURL   string
}

func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		store:     deps.Store,
		checkIns:  deps.CheckIns,
		profiles:  deps.Profiles,
		contacts:  deps.Contacts,
		schedule:  deps.Schedule,
		notifier:  deps.Notifier,
		log:       deps.Log,
		secretKey: deps.SecretKey,
		baseURL:   deps.BaseURL,
	}
}

const (
	inviteTokenTTL     = 7 * 24 * time.Hour
	invitePurpose      = "contact-invite"
	defaultInviterName = "Check-in User"
)

type inviteClaims struct {
	InviterName string `json:"inviterName"`
	ContactID   string `json:"contactId,omitempty"`
	Purpose     string `json:"purpose"`
	jwt.RegisteredClaims
}
