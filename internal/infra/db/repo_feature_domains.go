package db

import (
	"context"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type FeatureDomainRepository struct {
	db *gorm.DB
}

func NewFeatureDomainRepository(db *gorm.DB) *FeatureDomainRepository {
	return &FeatureDomainRepository{db: db}
}

func (r *FeatureDomainRepository) ListByDomainMethod(ctx context.Context, tenantID, domainPath, method string) ([]domain.FeatureDomain, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ApplicationFeatureDomainModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND domain = ? AND method = ?", tenantID, domainPath, method).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.FeatureDomain, 0, len(models))
	for _, m := range models {
		out = append(out, domain.FeatureDomain{
			ID:             m.ID,
			ApplicationID:  m.ApplicationID,
			TenantID:       m.TenantID,
			LicenseModelID: m.LicenseModelID,
			Domain:         m.Domain,
			Method:         m.Method,
		})
	}
	return out, nil
}
