package db

import (
	"context"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type BindingRepository struct {
	db *gorm.DB
}

func NewBindingRepository(db *gorm.DB) *BindingRepository {
	return &BindingRepository{db: db}
}

func (r *BindingRepository) ListByUserTenant(ctx context.Context, userID int64, tenantID string) ([]domain.SponsorBinding, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []TenantSponsorUserModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.SponsorBinding, 0, len(models))
	for _, m := range models {
		out = append(out, domain.SponsorBinding{
			UserID:      m.UserID,
			TenantID:    m.TenantID,
			SponsorID:   m.SponsorID,
			AccessLevel: domain.AccessLevel(m.AccessLevel),
			Status:      domain.BindingStatus(m.Status),
		})
	}
	return out, nil
}
