package db

import (
	"context"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) ListOwnedBySponsor(ctx context.Context, tenantID, sponsorID string) ([]domain.Campaign, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []CampaignModel
	err := r.db.WithContext(ctx).
		Joins("JOIN tenant_sponsor_campaigns tsc ON tsc.campaign_id = campaigns.id").
		Where("tsc.tenant_id = ? AND tsc.sponsor_id = ?", tenantID, sponsorID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(models))
	for _, m := range models {
		out = append(out, domain.Campaign{
			ID:       m.ID,
			Name:     m.Name,
			Division: m.Division,
			Family:   m.Family,
			Brand:    m.Brand,
			Status:   m.Status,
		})
	}
	return out, nil
}
