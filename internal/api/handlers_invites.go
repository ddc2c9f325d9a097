package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inviteGenerateInput struct {
	UserID      string `json:"userId"`
	ContactID   string `json:"contactId"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

type inviteTokenInput struct {
	InviteToken string `json:"inviteToken"`
}

type inviteAcceptInput struct {
	InviteToken string `json:"inviteToken"`
	UserID      string `json:"userId"`
	DeviceToken string `json:"deviceToken"`
}

// GenerateInvite mints a signed invite token and the link to share. Delivery
// is up to the caller; nothing is sent from here.
func (handler *Handler) GenerateInvite(c *fiber.Ctx) error {
	var input inviteGenerateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	inviterName := defaultInviterName
	if state := handler.store.Snapshot(); state.Profile != nil && state.Profile.Name != "" {
		inviterName = state.Profile.Name
	}

	now := handler.store.Now()
	expiresAt := now.Add(inviteTokenTTL)
	claims := inviteClaims{
		InviterName: inviterName,
		ContactID:   input.ContactID,
		Purpose:     invitePurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		handler.log.Error("sign invite token failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	return c.JSON(fiber.Map{
		"inviteToken": token,
		"inviteLink":  handler.baseURL + "/invite/" + token,
		"expiresAt":   expiresAt,
	})
}

// ValidateInvite reports an invite as valid regardless of the token. Claims
// that do decode are surfaced so the client can show the inviter's name.
func (handler *Handler) ValidateInvite(c *fiber.Ctx) error {
	var input inviteTokenInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	inviterName := defaultInviterName
	expiresAt := handler.store.Now().Add(inviteTokenTTL)
	if claims := handler.decodeInviteClaims(input.InviteToken); claims != nil {
		if claims.InviterName != "" {
			inviterName = claims.InviterName
		}
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
	}

	return c.JSON(fiber.Map{
		"valid":       true,
		"inviterName": inviterName,
		"expiresAt":   expiresAt,
	})
}

// AcceptInvite always succeeds; there is no account backend to link against.
// The caller's userId is echoed back so the accepting side links the contact
// to the identity it already knows.
func (handler *Handler) AcceptInvite(c *fiber.Ctx) error {
	var input inviteAcceptInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.log.Info("invite accepted",
		zap.String("user_id", input.UserID),
		zap.Bool("has_device_token", input.DeviceToken != ""),
	)
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Invite accepted successfully",
		"userId":      input.UserID,
		"deviceToken": input.DeviceToken,
	})
}

func (handler *Handler) decodeInviteClaims(token string) *inviteClaims {
	if token == "" {
		return nil
	}
	claims := &inviteClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Purpose != invitePurpose {
		return nil
	}
	return claims
}
