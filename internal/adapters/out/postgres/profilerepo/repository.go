package profilerepo

import (
	"context"
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityProvider implements IdentityProvider over the profiles table.
type GormIdentityProvider struct {
	db *gorm.DB
}

// NewGormIdentityProvider creates a new GORM identity provider.
func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{db: db}
}

// IsAdmin reports whether the actor holds the admin capability.
func (p *GormIdentityProvider) IsAdmin(ctx context.Context, actorID kernel.UUID) (bool, error) {
	dto, err := p.get(ctx, actorID)
	if err != nil {
		return false, err
	}

	return dto.IsAdmin, nil
}

// IsActive reports whether the actor's account is active.
func (p *GormIdentityProvider) IsActive(ctx context.Context, actorID kernel.UUID) (bool, error) {
	dto, err := p.get(ctx, actorID)
	if err != nil {
		return false, err
	}

	return dto.IsActive, nil
}

func (p *GormIdentityProvider) get(ctx context.Context, actorID kernel.UUID) (ProfileDTO, error) {
	if err := actorID.Validate(); err != nil {
		return ProfileDTO{}, err
	}

	var dto ProfileDTO
	if err := p.db.WithContext(ctx).First(&dto, "id = ?", actorID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileDTO{}, errs.NewObjectNotFoundError("profile", actorID.String())
		}
		return ProfileDTO{}, errs.NewStoreUnavailableError("get profile", err)
	}

	return dto, nil
}
