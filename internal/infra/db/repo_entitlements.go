package db

import (
	"context"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type EntitlementRepository struct {
	db *gorm.DB
}

func NewEntitlementRepository(db *gorm.DB) *EntitlementRepository {
	return &EntitlementRepository{db: db}
}

func (r *EntitlementRepository) ListCustomerCampaignIDs(ctx context.Context, userID int64, tenantID, sponsorID string) ([]string, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&CustomerEntitlementModel{}).
		Distinct("campaign_id").
		Where("user_id = ? AND tenant_id = ? AND sponsor_id = ? AND status = ? AND deleted_on IS NULL",
			userID, tenantID, sponsorID, "active").
		Pluck("campaign_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *EntitlementRepository) ListClientEntitlements(ctx context.Context, userID int64, tenantID string) ([]domain.ClientEntitlement, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []ClientEntitlementModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ? AND deleted_on IS NULL", userID, tenantID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClientEntitlement, 0, len(models))
	for _, m := range models {
		out = append(out, domain.ClientEntitlement{
			UserID:    m.UserID,
			TenantID:  m.TenantID,
			Division:  m.Division,
			Family:    m.Family,
			Brand:     m.Brand,
			DeletedOn: m.DeletedOn,
		})
	}
	return out, nil
}
