package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *CompanyEvent) error
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]CompanyEvent, error)
	// ListStartingBetween returns events with from < start_date <= to.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]CompanyEvent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *CompanyEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]CompanyEvent, error) {
	var rows []CompanyEvent
	q := r.db.WithContext(ctx).
		Where("start_date >= ?", from).
		Order("start_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]CompanyEvent, error) {
	var rows []CompanyEvent
	err := r.db.WithContext(ctx).
		Where("start_date > ? AND start_date <= ?", from, to).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
