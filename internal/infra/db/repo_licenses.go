package db

import (
	"context"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type LicenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) *LicenseRepository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) ListUsable(ctx context.Context, tenantID, sponsorID string) ([]domain.License, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []LicenseModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND sponsor_id = ? AND status = ? AND deleted_on IS NULL",
			tenantID, sponsorID, string(domain.LicenseActive)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.License, 0, len(models))
	for _, m := range models {
		out = append(out, domain.License{
			ID:             m.ID,
			LicenseModelID: m.LicenseModelID,
			ApplicationID:  m.ApplicationID,
			TenantID:       m.TenantID,
			SponsorID:      m.SponsorID,
			Status:         domain.LicenseStatus(m.Status),
			DeletedOn:      m.DeletedOn,
		})
	}
	return out, nil
}
