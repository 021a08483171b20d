// Package auth verifies identity-provider tokens. Issuing tokens is the
// provider's job; HomEat only checks them and reads the subject.
package auth

import (
	"context"
	"crypto/rsa"
	"os"

	"homeat/config"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/domain/service"
	"homeat/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims read from an identity token.
type IdentityClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier checks tokens signed with a shared secret (HS256) or an RSA key (RS256).
type jwtVerifier struct {
	parser *jwt.Parser
	key    any
}

// NewJWTVerifier builds a verifier from the auth config. A public key path
// takes precedence over a shared secret.
func NewJWTVerifier(cfg config.AuthConfig) (service.IdentityVerifier, error) {
	var (
		key    any
		method string
	)

	switch {
	case cfg.PublicKeyPath != "":
		pemBytes, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			return nil, errors.Wrap(err, "read identity public key")
		}
		rsaKey, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
		if err != nil {
			return nil, errors.Wrap(err, "parse identity public key")
		}
		key, method = rsaKey, jwt.SigningMethodRS256.Alg()
	case cfg.Secret != "":
		key, method = []byte(cfg.Secret), jwt.SigningMethodHS256.Alg()
	default:
		return nil, errors.New("auth secret or public key must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtVerifier{parser: jwt.NewParser(opts...), key: key}, nil
}

// Verify parses and validates rawToken and returns the identity it names.
func (v *jwtVerifier) Verify(_ context.Context, rawToken string) (*entity.Identity, error) {
	claims := &IdentityClaims{}
	if _, err := v.parser.ParseWithClaims(rawToken, claims, v.keyFunc); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails(err.Error()))
	}

	if claims.Subject == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("subject missing"))
	}

	return &entity.Identity{
		Subject:       claims.Subject,
		Name:          claims.Name,
		Email:         claims.Email,
		Authenticated: true,
	}, nil
}

func (v *jwtVerifier) keyFunc(token *jwt.Token) (any, error) {
	switch v.key.(type) {
	case *rsa.PublicKey:
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
	default:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
	}

	return v.key, nil
}
