package service

import (
	"context"

	"homeat/internal/domain/entity"
)

// IdentityVerifier turns a raw identity-provider token into an identity.
// Token issuance is the provider's business; we only verify.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*entity.Identity, error)
}
