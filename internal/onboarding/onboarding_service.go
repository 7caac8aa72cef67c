package onboarding

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"

	"go-onboarding/internal/authz"
	"go-onboarding/internal/identity"
	onboardingerrors "go-onboarding/internal/onboarding/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	progressCacheKeyPrefix = "onboarding:progress:"
	progressCacheTTL       = 5 * time.Minute
)

func progressCacheKey(userID string) string {
	return progressCacheKeyPrefix + userID
}

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	SeedDefaultTasks(ctx context.Context) error
	InitiateJourney(ctx context.Context, actor authz.Actor, userID string) (ProgressResponse, error)
	BootstrapJourney(ctx context.Context, userID string) (ProgressResponse, error)
	GetProgress(ctx context.Context, actor authz.Actor, userID string) (ProgressDetailResponse, error)
	ListTasksForStage(ctx context.Context, stage string) ([]TaskResponse, error)
	ToggleTaskCompletion(ctx context.Context, actor authz.Actor, taskID string, req ToggleTaskRequest) (TaskProgressResponse, error)
	ValidateTask(ctx context.Context, actor authz.Actor, taskID string, req ValidateTaskRequest) (TaskProgressResponse, error)
	UpdateTaskStatus(ctx context.Context, actor authz.Actor, taskID string, req UpdateTaskStatusRequest) (TaskProgressResponse, error)
	AdvancePhase(ctx context.Context, actor authz.Actor, userID string) (ProgressResponse, error)
	ResetJourney(ctx context.Context, actor authz.Actor, userID string, req ResetJourneyRequest) (ProgressResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  identity.Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users identity.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) SeedDefaultTasks(ctx context.Context) error {
	return s.repo.SeedTasks(ctx, DefaultTaskCatalogue)
}

func (s *service) InitiateJourney(ctx context.Context, actor authz.Actor, userID string) (ProgressResponse, error) {
	switch actor.Role {
	case authz.RoleSupervisor, authz.RoleManager, authz.RoleHR:
	case authz.RoleEmployee:
		return ProgressResponse{}, onboardingerrors.ErrAdvanceForbidden
	default:
		return ProgressResponse{}, authz.ErrUnknownRole
	}
	return s.createJourney(ctx, userID)
}

// BootstrapJourney is the automated path used by the employee-lifecycle
// consumer. Idempotent: an existing journey is returned unchanged.
func (s *service) BootstrapJourney(ctx context.Context, userID string) (ProgressResponse, error) {
	existing, err := s.repo.FindProgressByUser(ctx, userID)
	if err == nil {
		return mapProgressResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProgressResponse{}, err
	}
	return s.createJourney(ctx, userID)
}

func (s *service) createJourney(ctx context.Context, userID string) (ProgressResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ProgressResponse{}, onboardingerrors.ErrInvalidUserID
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressResponse{}, onboardingerrors.ErrUserNotFound
		}
		return ProgressResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("initiate journey begin tx failed", zap.Error(err))
		return ProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	now := time.Now().UTC()
	p := &OnboardingProgress{
		ID:                      uuid.New(),
		UserID:                  userUUID,
		Stage:                   StagePrepare,
		Progress:                0,
		StageStartDate:          now,
		EstimatedCompletionDate: now.AddDate(0, 0, stageDurationDays),
	}

	if err := qtx.CreateProgress(ctx, p); err != nil {
		s.logger.Error("initiate journey persist failed", zap.String("user_id", userID), zap.Error(err))
		return ProgressResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("initiate journey commit failed", zap.Error(err))
		return ProgressResponse{}, err
	}

	s.logger.Info("onboarding journey initiated", zap.String("user_id", userID))
	return mapProgressResponse(*p), nil
}

func (s *service) GetProgress(ctx context.Context, actor authz.Actor, userID string) (ProgressDetailResponse, error) {
	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressDetailResponse{}, onboardingerrors.ErrUserNotFound
		}
		return ProgressDetailResponse{}, err
	}

	subject := authz.Subject{UserID: target.ID.String()}
	if target.SupervisorID != nil {
		subject.SupervisorID = target.SupervisorID.String()
	}
	if !authz.CanViewUser(actor, subject) {
		s.logger.Warn("progress read rejected by hierarchy check",
			zap.String("actor_id", actor.UserID),
			zap.String("actor_role", actor.Role.String()),
			zap.String("target_id", userID),
		)
		return ProgressDetailResponse{}, onboardingerrors.ErrViewForbidden
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, progressCacheKey(userID)).Result(); err == nil {
			var resp ProgressDetailResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(progressCacheKey(userID), func() (any, error) {
		return s.loadProgressDetail(ctx, userID)
	})
	if err != nil {
		return ProgressDetailResponse{}, err
	}
	resp := v.(ProgressDetailResponse)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, progressCacheKey(userID), payload, progressCacheTTL).Err()
		}
	}

	return resp, nil
}

func (s *service) loadProgressDetail(ctx context.Context, userID string) (ProgressDetailResponse, error) {
	p, err := s.repo.FindProgressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressDetailResponse{}, onboardingerrors.ErrProgressNotFound
		}
		return ProgressDetailResponse{}, err
	}

	rows, err := s.repo.ListTaskProgressByUser(ctx, userID)
	if err != nil {
		return ProgressDetailResponse{}, err
	}
	byTask := make(map[uuid.UUID]UserTaskProgress, len(rows))
	for _, row := range rows {
		byTask[row.TaskID] = row
	}

	detail := ProgressDetailResponse{ProgressResponse: mapProgressResponse(*p)}
	for _, stage := range Stages() {
		tasks, err := s.repo.ListTasksForStage(ctx, stage)
		if err != nil {
			return ProgressDetailResponse{}, err
		}
		breakdown := StageBreakdown{Stage: stage.String(), Tasks: make([]TaskProgressResponse, 0, len(tasks))}
		for _, task := range tasks {
			tp, found := byTask[task.ID]
			if !found {
				tp = UserTaskProgress{UserID: p.UserID, TaskID: task.ID}
			}
			breakdown.Tasks = append(breakdown.Tasks, mapTaskProgressResponse(tp, &task))
		}
		detail.Stages = append(detail.Stages, breakdown)
	}

	return detail, nil
}

// ListTasksForStage returns the catalogue for a stage. Unknown stages yield
// an empty list, not an error.
func (s *service) ListTasksForStage(ctx context.Context, stage string) ([]TaskResponse, error) {
	st := Stage(stage)
	if !st.Valid() {
		return []TaskResponse{}, nil
	}

	tasks, err := s.repo.ListTasksForStage(ctx, st)
	if err != nil {
		return nil, err
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, TaskResponse{
			ID:        t.ID.String(),
			Stage:     t.Stage.String(),
			Order:     t.TaskOrder,
			Title:     t.Title,
			IsDefault: t.IsDefault,
		})
	}
	return resp, nil
}

func (s *service) ToggleTaskCompletion(ctx context.Context, actor authz.Actor, taskID string, req ToggleTaskRequest) (TaskProgressResponse, error) {
	if !authz.CanEditTasks(actor.Role) {
		return TaskProgressResponse{}, onboardingerrors.ErrTaskEditForbidden
	}

	targetID := actor.UserID
	if req.UserID != nil && *req.UserID != "" {
		targetID = *req.UserID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return TaskProgressResponse{}, onboardingerrors.ErrInvalidUserID
	}

	s.logger.Debug("toggle task completion requested",
		zap.String("actor_id", actor.UserID),
		zap.String("task_id", taskID),
		zap.String("target_user_id", targetID),
		zap.Bool("completed", req.Completed),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("toggle task begin tx failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	task, err := qtx.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskProgressResponse{}, onboardingerrors.ErrTaskNotFound
		}
		return TaskProgressResponse{}, err
	}

	tp, err := s.findOrCreateTaskProgress(ctx, qtx, targetUUID, task.ID)
	if err != nil {
		return TaskProgressResponse{}, err
	}

	if tp.IsCompleted == req.Completed {
		// Idempotent: nothing to write, report current state.
		if err := tx.Commit(); err != nil {
			return TaskProgressResponse{}, err
		}
		return mapTaskProgressResponse(*tp, task), nil
	}

	tp.IsCompleted = req.Completed
	if req.Completed {
		now := time.Now().UTC()
		tp.CompletedAt = &now
	} else {
		tp.CompletedAt = nil
		// hr_validated implies is_completed, so un-completing clears the
		// validation layer as well.
		tp.HRValidated = false
		tp.HRValidatedAt = nil
	}

	if err := qtx.UpdateTaskProgress(ctx, tp); err != nil {
		s.logger.Error("toggle task persist failed", zap.String("task_id", taskID), zap.Error(err))
		return TaskProgressResponse{}, mapRepositoryError(err)
	}

	if err := s.recomputeProgressTx(ctx, qtx, targetID); err != nil {
		return TaskProgressResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("toggle task commit failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}

	s.invalidateProgressCache(ctx, targetID)
	s.logger.Info("task completion toggled",
		zap.String("task_id", taskID),
		zap.String("target_user_id", targetID),
		zap.Bool("completed", req.Completed),
	)
	return mapTaskProgressResponse(*tp, task), nil
}

func (s *service) ValidateTask(ctx context.Context, actor authz.Actor, taskID string, req ValidateTaskRequest) (TaskProgressResponse, error) {
	if !authz.CanValidateTasks(actor.Role) {
		return TaskProgressResponse{}, onboardingerrors.ErrValidateForbidden
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("validate task begin tx failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	task, err := qtx.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskProgressResponse{}, onboardingerrors.ErrTaskNotFound
		}
		return TaskProgressResponse{}, err
	}

	tp, err := qtx.FindTaskProgress(ctx, req.UserID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Never touched means never completed; validation cannot precede
			// completion.
			return TaskProgressResponse{}, onboardingerrors.ErrTaskNotCompleted
		}
		return TaskProgressResponse{}, err
	}

	if !tp.IsCompleted {
		return TaskProgressResponse{}, onboardingerrors.ErrTaskNotCompleted.WithDetails(
			mapTaskProgressResponse(*tp, task),
		)
	}

	now := time.Now().UTC()
	tp.HRValidated = true
	tp.HRValidatedAt = &now
	if req.Comments != nil {
		tp.HRComments = req.Comments
	}

	if err := qtx.UpdateTaskProgress(ctx, tp); err != nil {
		s.logger.Error("validate task persist failed", zap.String("task_id", taskID), zap.Error(err))
		return TaskProgressResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("validate task commit failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}

	s.invalidateProgressCache(ctx, req.UserID)
	s.logger.Info("task hr-validated",
		zap.String("task_id", taskID),
		zap.String("target_user_id", req.UserID),
	)
	return mapTaskProgressResponse(*tp, task), nil
}

func (s *service) UpdateTaskStatus(ctx context.Context, actor authz.Actor, taskID string, req UpdateTaskStatusRequest) (TaskProgressResponse, error) {
	if !authz.CanEditTasks(actor.Role) {
		return TaskProgressResponse{}, onboardingerrors.ErrTaskEditForbidden
	}
	if req.HRValidated && !authz.CanValidateTasks(actor.Role) {
		return TaskProgressResponse{}, onboardingerrors.ErrValidateForbidden
	}
	if req.HRValidated && !req.Completed {
		return TaskProgressResponse{}, onboardingerrors.ErrValidatedTaskImmutable
	}

	targetUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return TaskProgressResponse{}, onboardingerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update task status begin tx failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	task, err := qtx.FindTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskProgressResponse{}, onboardingerrors.ErrTaskNotFound
		}
		return TaskProgressResponse{}, err
	}

	tp, err := s.findOrCreateTaskProgress(ctx, qtx, targetUUID, task.ID)
	if err != nil {
		return TaskProgressResponse{}, err
	}

	now := time.Now().UTC()
	if tp.IsCompleted != req.Completed {
		tp.IsCompleted = req.Completed
		if req.Completed {
			tp.CompletedAt = &now
		} else {
			tp.CompletedAt = nil
		}
	}
	if req.HRValidated && !tp.HRValidated {
		tp.HRValidated = true
		tp.HRValidatedAt = &now
	}
	if !req.Completed {
		tp.HRValidated = false
		tp.HRValidatedAt = nil
	}
	if req.Comments != nil {
		tp.HRComments = req.Comments
	}

	if err := qtx.UpdateTaskProgress(ctx, tp); err != nil {
		s.logger.Error("update task status persist failed", zap.String("task_id", taskID), zap.Error(err))
		return TaskProgressResponse{}, mapRepositoryError(err)
	}

	if err := s.recomputeProgressTx(ctx, qtx, req.UserID); err != nil {
		return TaskProgressResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update task status commit failed", zap.Error(err))
		return TaskProgressResponse{}, err
	}

	s.invalidateProgressCache(ctx, req.UserID)
	return mapTaskProgressResponse(*tp, task), nil
}

func (s *service) AdvancePhase(ctx context.Context, actor authz.Actor, userID string) (ProgressResponse, error) {
	if !authz.CanAdvancePhases(actor.Role) {
		return ProgressResponse{}, onboardingerrors.ErrAdvanceForbidden
	}

	s.logger.Debug("advance phase requested",
		zap.String("actor_id", actor.UserID),
		zap.String("target_user_id", userID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("advance phase begin tx failed", zap.Error(err))
		return ProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindProgressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressResponse{}, onboardingerrors.ErrProgressNotFound
		}
		return ProgressResponse{}, err
	}

	next, ok := p.Stage.Next()
	if !ok {
		s.logger.Warn("advance phase rejected at final stage",
			zap.String("target_user_id", userID),
			zap.String("stage", p.Stage.String()),
		)
		return ProgressResponse{}, onboardingerrors.ErrAlreadyAtFinalStage.WithDetails(
			mapProgressResponse(*p),
		)
	}

	now := time.Now().UTC()
	p.Stage = next
	p.StageStartDate = now
	p.EstimatedCompletionDate = now.AddDate(0, 0, stageDurationDays)

	if err := qtx.UpdateProgress(ctx, p); err != nil {
		s.logger.Error("advance phase persist failed", zap.String("target_user_id", userID), zap.Error(err))
		return ProgressResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("advance phase commit failed", zap.Error(err))
		return ProgressResponse{}, err
	}

	s.invalidateProgressCache(ctx, userID)
	s.logger.Info("phase advanced",
		zap.String("target_user_id", userID),
		zap.String("stage", next.String()),
	)
	return mapProgressResponse(*p), nil
}

func (s *service) ResetJourney(ctx context.Context, actor authz.Actor, userID string, req ResetJourneyRequest) (ProgressResponse, error) {
	if actor.Role != authz.RoleHR {
		return ProgressResponse{}, onboardingerrors.ErrResetForbidden
	}

	stage := StagePrepare
	if req.ResetToStage != "" {
		stage = Stage(req.ResetToStage)
		if !stage.Valid() {
			return ProgressResponse{}, onboardingerrors.ErrInvalidStage
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reset journey begin tx failed", zap.Error(err))
		return ProgressResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindProgressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressResponse{}, onboardingerrors.ErrProgressNotFound
		}
		return ProgressResponse{}, err
	}

	if !req.KeepCompletedTasks {
		if err := qtx.DeleteTaskProgressByUser(ctx, userID); err != nil {
			s.logger.Error("reset journey clear tasks failed", zap.String("target_user_id", userID), zap.Error(err))
			return ProgressResponse{}, err
		}
	}

	now := time.Now().UTC()
	p.Stage = stage
	p.StageStartDate = now
	p.EstimatedCompletionDate = now.AddDate(0, 0, stageDurationDays)

	if err := qtx.UpdateProgress(ctx, p); err != nil {
		return ProgressResponse{}, err
	}

	if err := s.recomputeProgressTx(ctx, qtx, userID); err != nil {
		return ProgressResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("reset journey commit failed", zap.Error(err))
		return ProgressResponse{}, err
	}

	s.invalidateProgressCache(ctx, userID)
	s.logger.Info("journey reset",
		zap.String("actor_id", actor.UserID),
		zap.String("target_user_id", userID),
		zap.String("stage", stage.String()),
		zap.Bool("keep_completed_tasks", req.KeepCompletedTasks),
	)
	return mapProgressResponse(*p), nil
}

func (s *service) findOrCreateTaskProgress(ctx context.Context, repo Repository, userID, taskID uuid.UUID) (*UserTaskProgress, error) {
	tp, err := repo.FindTaskProgress(ctx, userID.String(), taskID.String())
	if err == nil {
		return tp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &UserTaskProgress{
		ID:     uuid.New(),
		UserID: userID,
		TaskID: taskID,
	}
	if err := repo.CreateTaskProgress(ctx, fresh); err != nil {
		// A concurrent request may have created the row first; the unique
		// (user_id, task_id) index turns that race into a fetchable conflict.
		if isUniqueViolation(err) {
			return repo.FindTaskProgress(ctx, userID.String(), taskID.String())
		}
		return nil, err
	}
	return fresh, nil
}

// recomputeProgressTx rederives the overall percentage from the default task
// counts and stores it on the journey row. Journeys that do not exist yet are
// skipped so task edits before initiation do not fail.
func (s *service) recomputeProgressTx(ctx context.Context, repo Repository, userID string) error {
	p, err := repo.FindProgressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	total, err := repo.CountDefaultTasks(ctx)
	if err != nil {
		return err
	}
	completed, err := repo.CountCompletedDefaultTasks(ctx, userID)
	if err != nil {
		return err
	}

	p.Progress = overallProgress(completed, total)
	return repo.UpdateProgress(ctx, p)
}

// overallProgress is round(100 * completed / total), clamped to [0, 100].
func overallProgress(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	percent := int(math.Round(float64(completed) / float64(total) * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func (s *service) invalidateProgressCache(ctx context.Context, userID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, progressCacheKey(userID)).Err(); err != nil {
		s.logger.Warn("progress cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func mapProgressResponse(p OnboardingProgress) ProgressResponse {
	return ProgressResponse{
		UserID:                  p.UserID.String(),
		Stage:                   p.Stage.String(),
		Progress:                p.Progress,
		StageStartDate:          p.StageStartDate.Format(time.RFC3339),
		EstimatedCompletionDate: p.EstimatedCompletionDate.Format(time.RFC3339),
	}
}

func mapTaskProgressResponse(tp UserTaskProgress, task *OnboardingTask) TaskProgressResponse {
	resp := TaskProgressResponse{
		TaskID:          tp.TaskID.String(),
		UserID:          tp.UserID.String(),
		IsCompleted:     tp.IsCompleted,
		HRValidated:     tp.HRValidated,
		HRComments:      tp.HRComments,
		Notes:           tp.Notes,
		SupervisorNotes: tp.SupervisorNotes,
	}
	if task != nil {
		resp.Title = task.Title
		resp.Stage = task.Stage.String()
		resp.Order = task.TaskOrder
	}
	if tp.CompletedAt != nil {
		v := tp.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	if tp.HRValidatedAt != nil {
		v := tp.HRValidatedAt.Format(time.RFC3339)
		resp.HRValidatedAt = &v
	}
	return resp
}
