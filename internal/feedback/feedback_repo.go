package feedback

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_repo.go -destination=mock/feedback_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	Exists(ctx context.Context, userID string, t Type) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]Feedback, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) Exists(ctx context.Context, userID string, t Type) (bool, error) {
	var f Feedback
	err := r.db.WithContext(ctx).
		Select("id").
		First(&f, "user_id = ? AND type = ?", userID, t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Feedback, error) {
	var rows []Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&rows).Error
	return rows, err
}
