package assessment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	assessmenterrors "go-onboarding/internal/assessment/errors"
	"go-onboarding/internal/authz"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, actor authz.Actor, req OpenAssessmentRequest) (AssessmentResponse, error)
	Get(ctx context.Context, actor authz.Actor, id string) (AssessmentResponse, error)
	UploadCertificate(ctx context.Context, actor authz.Actor, id string, req UploadCertificateRequest) (AssessmentResponse, error)
	SubmitAssessment(ctx context.Context, actor authz.Actor, id string, req SubmitAssessmentRequest) (AssessmentResponse, error)
	SubmitDecision(ctx context.Context, actor authz.Actor, id string, req SupervisorDecisionRequest) (AssessmentResponse, error)
	SubmitHRDecision(ctx context.Context, actor authz.Actor, id string, req HRDecisionRequest) (AssessmentResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	users         identity.Repository
	notifications notification.Service
	logger        *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users identity.Repository, notifications notification.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("assessment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		users:         users,
		notifications: notifications,
		logger:        l,
	}
}

func (s *service) Open(ctx context.Context, actor authz.Actor, req OpenAssessmentRequest) (AssessmentResponse, error) {
	if actor.Role != authz.RoleHR {
		return AssessmentResponse{}, assessmenterrors.ErrOpenForbidden
	}

	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidUserID
	}
	supervisorUUID, err := uuid.Parse(req.SupervisorID)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidSupervisorID
	}

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssessmentResponse{}, assessmenterrors.ErrInvalidUserID
		}
		return AssessmentResponse{}, err
	}
	if _, err := s.users.FindByID(ctx, req.SupervisorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssessmentResponse{}, assessmenterrors.ErrInvalidSupervisorID
		}
		return AssessmentResponse{}, err
	}

	if _, err := s.repo.FindByUser(ctx, req.UserID); err == nil {
		return AssessmentResponse{}, assessmenterrors.ErrAssessmentAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AssessmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("open assessment begin tx failed", zap.Error(err))
		return AssessmentResponse{}, err
	}
	defer tx.Rollback()

	a := &SupervisorAssessment{
		ID:           uuid.New(),
		UserID:       userUUID,
		SupervisorID: supervisorUUID,
		Status:       StatusPendingCertificate,
	}
	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		if isUniqueViolation(err) {
			return AssessmentResponse{}, assessmenterrors.ErrAssessmentAlreadyExists
		}
		return AssessmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("assessment pipeline opened",
		zap.String("assessment_id", a.ID.String()),
		zap.String("user_id", req.UserID),
		zap.String("supervisor_id", req.SupervisorID))

	s.notify(ctx, req.UserID, notification.TypeAssessmentPending,
		"Assessment pipeline opened",
		"Upload your phase 1 certificate to start the supervisor assessment.",
		a)
	s.notify(ctx, req.SupervisorID, notification.TypeSupervisorAssessmentPending,
		"New assessment assigned",
		"An onboarding assessment has been opened for one of your reports.",
		a)

	return mapAssessmentResponse(*a), nil
}

func (s *service) Get(ctx context.Context, actor authz.Actor, id string) (AssessmentResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}

	switch actor.Role {
	case authz.RoleHR:
	case authz.RoleEmployee, authz.RoleSupervisor, authz.RoleManager:
		if actor.UserID != a.UserID.String() && actor.UserID != a.SupervisorID.String() {
			return AssessmentResponse{}, assessmenterrors.ErrViewForbidden
		}
	default:
		return AssessmentResponse{}, authz.ErrUnknownRole
	}

	return mapAssessmentResponse(*a), nil
}

func (s *service) UploadCertificate(ctx context.Context, actor authz.Actor, id string, req UploadCertificateRequest) (AssessmentResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}

	if actor.UserID != a.UserID.String() && actor.UserID != a.SupervisorID.String() {
		return AssessmentResponse{}, assessmenterrors.ErrCertificateForbidden
	}

	current := deriveStatus(a)
	if current.Terminal() {
		return AssessmentResponse{}, assessmenterrors.ErrPipelineClosed.WithDetails(stateDetails(a, current))
	}
	if a.CertificateFile != nil {
		return AssessmentResponse{}, assessmenterrors.ErrCertificateAlreadyUploaded.WithDetails(stateDetails(a, current))
	}

	now := time.Now().UTC()
	a.CertificateFile = &req.CertificateFile
	a.CertificateUploadDate = &now

	if err := s.save(ctx, a); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("certificate uploaded",
		zap.String("assessment_id", a.ID.String()),
		zap.String("uploaded_by", actor.UserID))

	s.notify(ctx, a.SupervisorID.String(), notification.TypeSupervisorAssessmentRequired,
		"Certificate uploaded",
		"The certificate is in. Complete the supervisor assessment.",
		a)

	return mapAssessmentResponse(*a), nil
}

func (s *service) SubmitAssessment(ctx context.Context, actor authz.Actor, id string, req SubmitAssessmentRequest) (AssessmentResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}

	if actor.UserID != a.SupervisorID.String() {
		return AssessmentResponse{}, assessmenterrors.ErrNotAssignedSupervisor
	}

	current := deriveStatus(a)
	if current.Terminal() {
		return AssessmentResponse{}, assessmenterrors.ErrPipelineClosed.WithDetails(stateDetails(a, current))
	}
	if a.CertificateFile == nil {
		return AssessmentResponse{}, assessmenterrors.ErrCertificateRequired.WithDetails(stateDetails(a, current))
	}
	if a.AssessmentDate != nil {
		return AssessmentResponse{}, assessmenterrors.ErrAssessmentAlreadySubmitted.WithDetails(stateDetails(a, current))
	}
	if req.Score < 0 || req.Score > 100 {
		return AssessmentResponse{}, assessmenterrors.ErrScoreOutOfRange
	}

	now := time.Now().UTC()
	score := req.Score
	a.AssessmentDate = &now
	a.AssessmentScore = &score
	a.AssessmentNotes = req.Notes

	if err := s.save(ctx, a); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("assessment submitted",
		zap.String("assessment_id", a.ID.String()),
		zap.Int("score", score))

	return mapAssessmentResponse(*a), nil
}

func (s *service) SubmitDecision(ctx context.Context, actor authz.Actor, id string, req SupervisorDecisionRequest) (AssessmentResponse, error) {
	a, err := s.findByID(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}

	if actor.UserID != a.SupervisorID.String() {
		return AssessmentResponse{}, assessmenterrors.ErrNotAssignedSupervisor
	}

	switch req.Decision {
	case DecisionProceedToPhase2, DecisionTerminate, DecisionPutOnHold:
	default:
		return AssessmentResponse{}, assessmenterrors.ErrInvalidDecision
	}

	current := deriveStatus(a)
	if current.Terminal() {
		return AssessmentResponse{}, assessmenterrors.ErrPipelineClosed.WithDetails(stateDetails(a, current))
	}
	if a.AssessmentDate == nil {
		return AssessmentResponse{}, assessmenterrors.ErrAssessmentRequired.WithDetails(stateDetails(a, current))
	}
	if a.SupervisorDecision != nil {
		return AssessmentResponse{}, assessmenterrors.ErrDecisionAlreadyMade.WithDetails(stateDetails(a, current))
	}

	now := time.Now().UTC()
	decision := req.Decision
	a.SupervisorDecision = &decision
	a.SupervisorComments = req.Comments
	a.DecisionDate = &now

	if err := s.save(ctx, a); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("supervisor decision recorded",
		zap.String("assessment_id", a.ID.String()),
		zap.String("decision", decision),
		zap.String("status", string(a.Status)))

	switch decision {
	case DecisionProceedToPhase2:
		s.notifyHR(ctx, "HR decision required",
			"A supervisor recommended proceeding to phase 2. Record the HR decision.", a)
	default:
		// terminate / put_on_hold close the pipeline without an HR step; HR
		// still gets told what happened.
		s.notifyHR(ctx, "Assessment pipeline closed by supervisor",
			"A supervisor closed an assessment with decision "+decision+".", a)
	}

	return mapAssessmentResponse(*a), nil
}

func (s *service) SubmitHRDecision(ctx context.Context, actor authz.Actor, id string, req HRDecisionRequest) (AssessmentResponse, error) {
	if actor.Role != authz.RoleHR {
		return AssessmentResponse{}, assessmenterrors.ErrHRDecisionForbidden
	}

	a, err := s.findByID(ctx, id)
	if err != nil {
		return AssessmentResponse{}, err
	}

	switch req.Decision {
	case HRDecisionApprove, HRDecisionReject, HRDecisionRequestChanges:
	default:
		return AssessmentResponse{}, assessmenterrors.ErrInvalidHRDecision
	}

	current := deriveStatus(a)
	if current != StatusHRApprovalPending {
		if current.Terminal() {
			return AssessmentResponse{}, assessmenterrors.ErrPipelineClosed.WithDetails(stateDetails(a, current))
		}
		return AssessmentResponse{}, assessmenterrors.ErrNotAwaitingHRDecision.WithDetails(stateDetails(a, current))
	}

	now := time.Now().UTC()
	switch req.Decision {
	case HRDecisionRequestChanges:
		// Reopens the decision step: the supervisor decision is wiped and the
		// pipeline falls back to decision_pending. The comments carry the ask.
		a.SupervisorDecision = nil
		a.SupervisorComments = nil
		a.DecisionDate = nil
		a.HRDecision = nil
		a.HRDecisionComments = req.Comments
		a.HRDecisionDate = nil
	default:
		decision := req.Decision
		a.HRDecision = &decision
		a.HRDecisionComments = req.Comments
		a.HRDecisionDate = &now
	}

	if err := s.save(ctx, a); err != nil {
		return AssessmentResponse{}, err
	}

	s.logger.Info("hr decision recorded",
		zap.String("assessment_id", a.ID.String()),
		zap.String("decision", req.Decision),
		zap.String("status", string(a.Status)))

	switch req.Decision {
	case HRDecisionApprove:
		s.notify(ctx, a.UserID.String(), notification.TypeSystem,
			"Assessment approved",
			"HR approved your supervisor assessment. Your journey continues to phase 2.",
			a)
	case HRDecisionReject:
		s.notify(ctx, a.SupervisorID.String(), notification.TypeSystem,
			"Assessment rejected by HR",
			"HR rejected the supervisor assessment.",
			a)
	case HRDecisionRequestChanges:
		s.notify(ctx, a.SupervisorID.String(), notification.TypeSupervisorAssessmentRequired,
			"HR requested changes",
			"HR sent the assessment back. Review the comments and rerecord your decision.",
			a)
	}

	return mapAssessmentResponse(*a), nil
}

func (s *service) findByID(ctx context.Context, id string) (*SupervisorAssessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, assessmenterrors.ErrAssessmentNotFound
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, assessmenterrors.ErrAssessmentNotFound
		}
		return nil, err
	}
	return a, nil
}

// save rederives the status and writes the record in one transaction.
func (s *service) save(ctx context.Context, a *SupervisorAssessment) error {
	a.Status = deriveStatus(a)
	a.UpdatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assessment begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Update(ctx, a); err != nil {
		return err
	}
	return tx.Commit()
}

// notify is best effort: the state change has already committed and a failed
// notification must not roll it back.
func (s *service) notify(ctx context.Context, userID string, t notification.Type, title, message string, a *SupervisorAssessment) {
	if s.notifications == nil {
		return
	}
	_, err := s.notifications.Notify(ctx, notification.CreateInput{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Metadata: map[string]any{
			"assessmentId": a.ID.String(),
			"status":       string(a.Status),
		},
	})
	if err != nil {
		s.logger.Warn("assessment notification failed",
			zap.String("assessment_id", a.ID.String()),
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func (s *service) notifyHR(ctx context.Context, title, message string, a *SupervisorAssessment) {
	hrs, err := s.users.ListByRole(ctx, string(authz.RoleHR))
	if err != nil {
		s.logger.Warn("listing hr users for notification failed", zap.Error(err))
		return
	}
	for _, hr := range hrs {
		s.notify(ctx, hr.ID.String(), notification.TypeAssessmentPending, title, message, a)
	}
}

// stateDetails is attached to invalid-state rejections so the caller sees the
// record it conflicted with.
func stateDetails(a *SupervisorAssessment, current Status) map[string]any {
	return map[string]any{
		"assessmentId": a.ID.String(),
		"status":       string(current),
		"assessment":   mapAssessmentResponse(*a),
	}
}

func mapAssessmentResponse(a SupervisorAssessment) AssessmentResponse {
	resp := AssessmentResponse{
		ID:                 a.ID.String(),
		UserID:             a.UserID.String(),
		SupervisorID:       a.SupervisorID.String(),
		Status:             string(deriveStatus(&a)),
		CertificateFile:    a.CertificateFile,
		AssessmentNotes:    a.AssessmentNotes,
		AssessmentScore:    a.AssessmentScore,
		SupervisorDecision: a.SupervisorDecision,
		SupervisorComments: a.SupervisorComments,
		HRDecision:         a.HRDecision,
		HRDecisionComments: a.HRDecisionComments,
	}
	resp.CertificateUploadDate = formatTimePtr(a.CertificateUploadDate)
	resp.AssessmentDate = formatTimePtr(a.AssessmentDate)
	resp.DecisionDate = formatTimePtr(a.DecisionDate)
	resp.HRDecisionDate = formatTimePtr(a.HRDecisionDate)
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}
