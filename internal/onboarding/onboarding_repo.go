package onboarding

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=onboarding_repo.go -destination=mock/onboarding_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateProgress(ctx context.Context, p *OnboardingProgress) error
	FindProgressByUser(ctx context.Context, userID string) (*OnboardingProgress, error)
	UpdateProgress(ctx context.Context, p *OnboardingProgress) error

	SeedTasks(ctx context.Context, defs []TaskDefinition) error
	FindTaskByID(ctx context.Context, taskID string) (*OnboardingTask, error)
	ListTasksForStage(ctx context.Context, stage Stage) ([]OnboardingTask, error)
	CountDefaultTasks(ctx context.Context) (int64, error)

	FindTaskProgress(ctx context.Context, userID, taskID string) (*UserTaskProgress, error)
	CreateTaskProgress(ctx context.Context, tp *UserTaskProgress) error
	UpdateTaskProgress(ctx context.Context, tp *UserTaskProgress) error
	ListTaskProgressByUser(ctx context.Context, userID string) ([]UserTaskProgress, error)
	CountCompletedDefaultTasks(ctx context.Context, userID string) (int64, error)
	DeleteTaskProgressByUser(ctx context.Context, userID string) error
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

func (r *repository) CreateProgress(ctx context.Context, p *OnboardingProgress) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindProgressByUser(ctx context.Context, userID string) (*OnboardingProgress, error) {
	var p OnboardingProgress
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	return &p, err
}

func (r *repository) UpdateProgress(ctx context.Context, p *OnboardingProgress) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// SeedTasks inserts catalogue entries that are not present yet, keyed by
// (stage, task_order). Existing rows are left untouched.
func (r *repository) SeedTasks(ctx context.Context, defs []TaskDefinition) error {
	for _, def := range defs {
		var existing OnboardingTask
		err := r.db.WithContext(ctx).
			Where("stage = ? AND task_order = ?", def.Stage, def.Order).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		task := OnboardingTask{
			Stage:     def.Stage,
			TaskOrder: def.Order,
			Title:     def.Title,
			IsDefault: true,
		}
		if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindTaskByID(ctx context.Context, taskID string) (*OnboardingTask, error) {
	var t OnboardingTask
	err := r.db.WithContext(ctx).First(&t, "id = ?", taskID).Error
	return &t, err
}

func (r *repository) ListTasksForStage(ctx context.Context, stage Stage) ([]OnboardingTask, error) {
	var tasks []OnboardingTask
	err := r.db.WithContext(ctx).
		Where("stage = ?", stage).
		Order("task_order ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) CountDefaultTasks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OnboardingTask{}).
		Where("is_default = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repository) FindTaskProgress(ctx context.Context, userID, taskID string) (*UserTaskProgress, error) {
	var tp UserTaskProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tp, "task_id = ?", taskID).Error
	return &tp, err
}

func (r *repository) CreateTaskProgress(ctx context.Context, tp *UserTaskProgress) error {
	return r.db.WithContext(ctx).Create(tp).Error
}

func (r *repository) UpdateTaskProgress(ctx context.Context, tp *UserTaskProgress) error {
	return r.db.WithContext(ctx).Save(tp).Error
}

func (r *repository) ListTaskProgressByUser(ctx context.Context, userID string) ([]UserTaskProgress, error) {
	var rows []UserTaskProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountCompletedDefaultTasks(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserTaskProgress{}).
		Joins("JOIN onboarding_tasks ON onboarding_tasks.id = user_task_progresses.task_id").
		Where("user_task_progresses.user_id = ?", userID).
		Where("user_task_progresses.is_completed = ?", true).
		Where("onboarding_tasks.is_default = ?", true).
		Count(&count).Error
	return count, err
}

func (r *repository) DeleteTaskProgressByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&UserTaskProgress{}).Error
}
