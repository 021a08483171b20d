package handler

import (
	"log/slog"
	"net/http"

	"homeat/config"
	"homeat/internal/delivery/web/response"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// AuthHandler turns an identity token into a session cookie and back.
type AuthHandler struct {
	verifier   service.IdentityVerifier
	cookieName string
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		verifier:   params.Verifier,
		cookieName: params.Config.Auth.CookieName,
		logger:     params.Logger,
	}
}

// SessionRequest carries a token issued by the identity provider.
type SessionRequest struct {
	Token string `form:"token" json:"token" validate:"required"`
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	Subject string `json:"subject"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
}

// CreateSession verifies the token and stores it in an HttpOnly cookie.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid session request")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	ctx := c.Request().Context()
	identity, err := h.verifier.Verify(ctx, req.Token)
	if err != nil {
		logger(ctx, h.logger).Info("Rejected identity token", slog.Any("error", err))

		return domainerrors.ErrInvalidToken
	}

	c.SetCookie(h.cookie(c, req.Token, 0))
	logger(ctx, h.logger).Info("Session started", slog.String("subject", identity.Subject))

	if response.WantsJSON(c) {
		return response.Success(c, http.StatusOK, sessionResponse(identity))
	}

	return response.SeeOther(c, "/")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie(c, "", -1))

	if response.WantsJSON(c) {
		return c.NoContent(http.StatusNoContent)
	}

	return response.SeeOther(c, "/")
}

func (h *AuthHandler) cookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionResponse(identity *entity.Identity) SessionResponse {
	return SessionResponse{
		Subject: identity.Subject,
		Name:    identity.Name,
		Email:   identity.Email,
	}
}
