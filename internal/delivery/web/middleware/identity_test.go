package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeat/config"
	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]entity.Identity

func (s stubVerifier) Verify(_ context.Context, rawToken string) (*entity.Identity, error) {
	identity, ok := s[rawToken]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return &identity, nil
}

func newIdentityMiddleware() *IdentityMiddleware {
	cfg := &config.Config{}
	cfg.Auth.CookieName = "homeat_session"

	return NewIdentityMiddleware(stubVerifier{
		"good": {Subject: "user-1", Authenticated: true},
	}, cfg, slog.Default())
}

func TestIdentityMiddleware_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(req *http.Request)
		want    entity.Identity
	}{
		{
			name:    "bearer token",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") },
			want:    entity.Identity{Subject: "user-1", Authenticated: true},
		},
		{
			name:    "session cookie",
			prepare: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "homeat_session", Value: "good"}) },
			want:    entity.Identity{Subject: "user-1", Authenticated: true},
		},
		{
			name:    "invalid token falls back to anonymous",
			prepare: func(req *http.Request) { req.Header.Set("Authorization", "Bearer bad") },
			want:    entity.Anonymous,
		},
		{
			name:    "no token",
			prepare: func(*http.Request) {},
			want:    entity.Anonymous,
		},
	}

	m := newIdentityMiddleware()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			c := e.NewContext(req, httptest.NewRecorder())

			var got entity.Identity
			err := m.Resolve(func(c echo.Context) error {
				got = deliverycontext.GetIdentity(c)

				return nil
			})(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityMiddleware_RequireIdentity(t *testing.T) {
	m := newIdentityMiddleware()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/images", nil), httptest.NewRecorder())

	err := m.RequireIdentity(func(echo.Context) error { return nil })(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	deliverycontext.SetIdentity(c, entity.Identity{Subject: "user-1", Authenticated: true})
	assert.NoError(t, m.RequireIdentity(func(echo.Context) error { return nil })(c))
}
