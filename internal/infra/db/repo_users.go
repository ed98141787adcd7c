package db

import (
	"context"
	"errors"

	"insightd/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetBySubjectID(ctx context.Context, subjectID string) (*domain.User, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "cognito_user_id = ?", subjectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.User{
		ID:        model.ID,
		SubjectID: model.SubjectID,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		CreatedAt: model.CreatedAt,
	}, nil
}
