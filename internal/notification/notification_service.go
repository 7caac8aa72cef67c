package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-onboarding/internal/authz"
	"go-onboarding/internal/events"
	"go-onboarding/internal/messaging/kafka"
	notificationerrors "go-onboarding/internal/notification/errors"
	"go-onboarding/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateInput is the internal emission shape used by the scheduler and the
// assessment pipeline.
type CreateInput struct {
	UserID   string
	Type     Type
	Title    string
	Message  string
	Metadata map[string]any
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Notify(ctx context.Context, input CreateInput) (NotificationResponse, error)
	Send(ctx context.Context, actor authz.Actor, req SendNotificationRequest) (NotificationResponse, error)
	ListForUser(ctx context.Context, actor authz.Actor, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, actor authz.Actor, id string) (NotificationResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// Notify persists the notification and, within the same transaction, queues
// the fan-out event on the outbox so the row and its delivery can never
// disagree.
func (s *service) Notify(ctx context.Context, input CreateInput) (NotificationResponse, error) {
	userUUID, err := uuid.Parse(input.UserID)
	if err != nil {
		return NotificationResponse{}, notificationerrors.ErrInvalidUserID
	}
	if !input.Type.Valid() {
		return NotificationResponse{}, notificationerrors.ErrInvalidType
	}

	var metadata []byte
	if input.Metadata != nil {
		metadata, err = json.Marshal(input.Metadata)
		if err != nil {
			return NotificationResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("notify begin tx failed", zap.Error(err))
		return NotificationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n := &Notification{
		ID:       uuid.New(),
		UserID:   userUUID,
		Type:     input.Type,
		Title:    input.Title,
		Message:  input.Message,
		Metadata: metadata,
	}

	if err := qtx.Create(ctx, n); err != nil {
		s.logger.Error("notify persist failed",
			zap.String("user_id", input.UserID),
			zap.String("type", input.Type.String()),
			zap.Error(err),
		)
		return NotificationResponse{}, err
	}

	if s.outbox != nil {
		rid := contextutil.GetRequestID(ctx)
		event := events.NotificationCreatedEvent{
			EventType:      "notification_created",
			RequestID:      rid,
			NotificationID: n.ID.String(),
			UserID:         input.UserID,
			Type:           input.Type.String(),
			Title:          input.Title,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return NotificationResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "notification",
			AggregateID:   n.ID.String(),
			EventType:     event.EventType,
			Topic:         events.NotificationCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("notify outbox persist failed",
				zap.String("notification_id", n.ID.String()),
				zap.Error(err),
			)
			return NotificationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("notify commit failed", zap.Error(err))
		return NotificationResponse{}, err
	}

	s.logger.Debug("notification created",
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", input.UserID),
		zap.String("type", input.Type.String()),
	)
	return mapResponse(*n), nil
}

func (s *service) Send(ctx context.Context, actor authz.Actor, req SendNotificationRequest) (NotificationResponse, error) {
	if actor.Role != authz.RoleHR {
		return NotificationResponse{}, notificationerrors.ErrCreateForbidden
	}

	return s.Notify(ctx, CreateInput{
		UserID:   req.UserID,
		Type:     Type(req.Type),
		Title:    req.Title,
		Message:  req.Message,
		Metadata: req.Metadata,
	})
}

func (s *service) ListForUser(ctx context.Context, actor authz.Actor, unreadOnly bool) ([]NotificationResponse, error) {
	rows, err := s.repo.ListByUser(ctx, actor.UserID, unreadOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		resp[i] = mapResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, actor authz.Actor, id string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, err
	}

	if n.UserID.String() != actor.UserID {
		return NotificationResponse{}, notificationerrors.ErrNotOwner
	}

	if !n.IsRead {
		if err := s.repo.MarkRead(ctx, id); err != nil {
			return NotificationResponse{}, err
		}
		n.IsRead = true
	}

	return mapResponse(*n), nil
}

func mapResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Type:      n.Type.String(),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if len(n.Metadata) > 0 {
		var meta map[string]any
		if err := json.Unmarshal(n.Metadata, &meta); err == nil {
			resp.Metadata = meta
		}
	}
	return resp
}
