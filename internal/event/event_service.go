package event

import (
	"context"
	"time"

	"go-onboarding/internal/authz"
	eventerrors "go-onboarding/internal/event/errors"
	"go-onboarding/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, actor authz.Actor, req CreateEventRequest) (EventResponse, error)
	ListUpcoming(ctx context.Context, limit int) ([]EventResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actor authz.Actor, req CreateEventRequest) (EventResponse, error) {
	if actor.Role != authz.RoleHR {
		return EventResponse{}, eventerrors.ErrCreateForbidden
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return EventResponse{}, apperror.InvalidField("startDate")
	}
	if !start.After(time.Now().UTC()) {
		return EventResponse{}, eventerrors.ErrStartDateInPast
	}

	creatorUUID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return EventResponse{}, apperror.ErrUnauthorized
	}

	e := &CompanyEvent{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   start.UTC(),
		CreatedBy:   creatorUUID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return EventResponse{}, err
	}

	s.logger.Info("company event created",
		zap.String("event_id", e.ID.String()),
		zap.Time("start_date", e.StartDate))

	return mapEventResponse(*e), nil
}

func (s *service) ListUpcoming(ctx context.Context, limit int) ([]EventResponse, error) {
	rows, err := s.repo.ListUpcoming(ctx, time.Now().UTC(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]EventResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, mapEventResponse(e))
	}
	return out, nil
}

func mapEventResponse(e CompanyEvent) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartDate:   e.StartDate.UTC().Format(time.RFC3339),
		CreatedBy:   e.CreatedBy.String(),
	}
}
