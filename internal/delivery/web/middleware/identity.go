package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"homeat/config"
	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"
	"homeat/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// IdentityMiddleware resolves the caller's identity from a bearer token or
// the session cookie. Requests without a valid token continue anonymously.
type IdentityMiddleware struct {
	verifier   service.IdentityVerifier
	cookieName string
	logger     *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(verifier service.IdentityVerifier, cfg *config.Config, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		verifier:   verifier,
		cookieName: cfg.Auth.CookieName,
		logger:     logger,
	}
}

// Resolve stores the identity on the context for every request.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetIdentity(c, entity.Anonymous)

		token := m.token(c.Request())
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring invalid identity token", slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetIdentity(c, *identity)

		return next(c)
	}
}

// RequireIdentity rejects anonymous callers. It must be used after Resolve.
func (m *IdentityMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !deliverycontext.GetIdentity(c).Authenticated {
			return echo.NewHTTPError(http.StatusUnauthorized, "please sign in first")
		}

		return next(c)
	}
}

func (m *IdentityMiddleware) token(req *http.Request) string {
	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := req.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}
