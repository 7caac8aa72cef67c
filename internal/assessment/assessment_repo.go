package assessment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assessment_repo.go -destination=mock/assessment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *SupervisorAssessment) error
	FindByID(ctx context.Context, id string) (*SupervisorAssessment, error)
	FindByUser(ctx context.Context, userID string) (*SupervisorAssessment, error)
	Update(ctx context.Context, a *SupervisorAssessment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction. Statements on
// the returned repository run on tx and commit or roll back with it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, a *SupervisorAssessment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SupervisorAssessment, error) {
	var a SupervisorAssessment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) (*SupervisorAssessment, error) {
	var a SupervisorAssessment
	err := r.db.WithContext(ctx).First(&a, "user_id = ?", userID).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *SupervisorAssessment) error {
	return r.db.WithContext(ctx).Save(a).Error
}
