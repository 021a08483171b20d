package auth

import (
	"log/slog"

	"homeat/config"
	"homeat/internal/domain/service"
	"homeat/internal/errors"
	"homeat/internal/infra/auth/google"
)

// NewIdentityVerifier picks the verifier named by auth.provider.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT, "":
		logger.Info("Using JWT identity verifier", slog.String("issuer", cfg.Auth.Issuer))

		return NewJWTVerifier(cfg.Auth)
	case config.AuthProviderGoogle:
		if cfg.Auth.GoogleClientID == "" {
			return nil, errors.New("auth.googleClientId is required for the google provider")
		}
		logger.Info("Using Google identity verifier")

		return google.NewIDTokenVerifier(cfg.Auth.GoogleClientID, logger), nil
	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Auth.Provider)
	}
}
