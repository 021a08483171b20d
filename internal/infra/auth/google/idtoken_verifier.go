package google

import (
	"context"
	"log/slog"

	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/domain/service"
	"homeat/internal/errors"

	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// IDTokenVerifier validates Google Sign-In ID tokens.
type IDTokenVerifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewIDTokenVerifier creates a verifier bound to the OAuth client ID.
func NewIDTokenVerifier(clientID string, logger *slog.Logger) service.IdentityVerifier {
	return &IDTokenVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// Verify implements service.IdentityVerifier.
func (v *IDTokenVerifier) Verify(ctx context.Context, rawToken string) (*entity.Identity, error) {
	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		v.logger.Debug("Google ID token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails(err.Error()))
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("invalid issuer: " + payload.Issuer))
	}
	if payload.Subject == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("subject missing"))
	}

	name, _ := payload.Claims["name"].(string)
	email, _ := payload.Claims["email"].(string)

	return &entity.Identity{
		Subject:       payload.Subject,
		Name:          name,
		Email:         email,
		Authenticated: true,
	}, nil
}
