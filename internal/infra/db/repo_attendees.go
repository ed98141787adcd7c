package db

import (
	"context"
	"errors"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type AttendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) ListByCampaign(ctx context.Context, campaignID string, offset, limit int) ([]domain.Attendee, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var models []CampaignAttendeeModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attendee, 0, len(models))
	for _, m := range models {
		out = append(out, attendeeFromModel(m))
	}
	return out, nil
}

func (r *AttendeeRepository) CountByCampaign(ctx context.Context, campaignID string) (int64, error) {
	if r.db == nil {
		return 0, errDBUnavailable
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CampaignAttendeeModel{}).
		Where("campaign_id = ?", campaignID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AttendeeRepository) GetByCampaignAndEmail(ctx context.Context, campaignID, email string) (*domain.Attendee, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model CampaignAttendeeModel
	err := r.db.WithContext(ctx).
		First(&model, "campaign_id = ? AND lower(email) = lower(?)", campaignID, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	attendee := attendeeFromModel(model)
	return &attendee, nil
}

func attendeeFromModel(m CampaignAttendeeModel) domain.Attendee {
	return domain.Attendee{
		ID:          m.ID,
		CampaignID:  m.CampaignID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		CompanyName: m.CompanyName,
		JobTitle:    m.JobTitle,
		Industry:    m.Industry,
		Country:     m.Country,
		City:        m.City,
		State:       m.State,
	}
}
