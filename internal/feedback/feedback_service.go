package feedback

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-onboarding/internal/authz"
	feedbackerrors "go-onboarding/internal/feedback/errors"
	"go-onboarding/internal/identity"
	onboardingerrors "go-onboarding/internal/onboarding/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, actor authz.Actor, req SubmitFeedbackRequest) (FeedbackResponse, error)
	ListForUser(ctx context.Context, actor authz.Actor, userID string) ([]FeedbackResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  identity.Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users identity.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("feedback.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feedback.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

func (s *service) Submit(ctx context.Context, actor authz.Actor, req SubmitFeedbackRequest) (FeedbackResponse, error) {
	t := Type(req.Type)
	if !t.Valid() {
		return FeedbackResponse{}, feedbackerrors.ErrInvalidType
	}

	userUUID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return FeedbackResponse{}, onboardingerrors.ErrInvalidUserID
	}

	exists, err := s.repo.Exists(ctx, actor.UserID, t)
	if err != nil {
		return FeedbackResponse{}, err
	}
	if exists {
		return FeedbackResponse{}, feedbackerrors.ErrAlreadySubmitted
	}

	f := &Feedback{
		ID:          uuid.New(),
		UserID:      userUUID,
		Type:        t,
		Content:     req.Content,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return FeedbackResponse{}, err
	}

	s.logger.Info("feedback submitted",
		zap.String("user_id", actor.UserID),
		zap.String("type", string(t)))

	return mapFeedbackResponse(*f), nil
}

func (s *service) ListForUser(ctx context.Context, actor authz.Actor, userID string) ([]FeedbackResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, onboardingerrors.ErrUserNotFound
		}
		return nil, err
	}

	subject := authz.Subject{UserID: user.ID.String()}
	if user.SupervisorID != nil {
		subject.SupervisorID = user.SupervisorID.String()
	}
	if !authz.CanViewUser(actor, subject) {
		return nil, feedbackerrors.ErrViewForbidden
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]FeedbackResponse, 0, len(rows))
	for _, f := range rows {
		out = append(out, mapFeedbackResponse(f))
	}
	return out, nil
}

func mapFeedbackResponse(f Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID.String(),
		UserID:      f.UserID.String(),
		Type:        string(f.Type),
		Content:     f.Content,
		SubmittedAt: f.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
