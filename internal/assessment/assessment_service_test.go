package assessment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-onboarding/internal/assessment"
	assessmenterrors "go-onboarding/internal/assessment/errors"
	"go-onboarding/internal/authz"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAssessmentRepository struct {
	withTxFn     func(tx *sql.Tx) assessment.Repository
	createFn     func(ctx context.Context, a *assessment.SupervisorAssessment) error
	findByIDFn   func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error)
	findByUserFn func(ctx context.Context, userID string) (*assessment.SupervisorAssessment, error)
	updateFn     func(ctx context.Context, a *assessment.SupervisorAssessment) error
}

func (f *fakeAssessmentRepository) WithTx(tx *sql.Tx) assessment.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAssessmentRepository) Create(ctx context.Context, a *assessment.SupervisorAssessment) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAssessmentRepository) FindByID(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssessmentRepository) FindByUser(ctx context.Context, userID string) (*assessment.SupervisorAssessment, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssessmentRepository) Update(ctx context.Context, a *assessment.SupervisorAssessment) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

type fakeIdentityRepository struct {
	findByIDFn   func(ctx context.Context, id string) (*identity.User, error)
	listByRoleFn func(ctx context.Context, role string) ([]identity.User, error)
}

func (f *fakeIdentityRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &identity.User{ID: uuid.New()}, nil
}

func (f *fakeIdentityRepository) ListByRole(ctx context.Context, role string) ([]identity.User, error) {
	if f.listByRoleFn != nil {
		return f.listByRoleFn(ctx, role)
	}
	return nil, nil
}

func (f *fakeIdentityRepository) ListEmployees(ctx context.Context) ([]identity.User, error) {
	return f.ListByRole(ctx, "employee")
}

func (f *fakeIdentityRepository) ListAll(ctx context.Context) ([]identity.User, error) {
	return nil, nil
}

type fakeNotificationService struct {
	sent []notification.CreateInput
}

func (f *fakeNotificationService) Notify(ctx context.Context, input notification.CreateInput) (notification.NotificationResponse, error) {
	f.sent = append(f.sent, input)
	return notification.NotificationResponse{}, nil
}

func (f *fakeNotificationService) Send(ctx context.Context, actor authz.Actor, req notification.SendNotificationRequest) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

func (f *fakeNotificationService) ListForUser(ctx context.Context, actor authz.Actor, unreadOnly bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, actor authz.Actor, id string) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

type assessmentServiceDeps struct {
	db            *sql.DB
	sqlMock       sqlmock.Sqlmock
	service       assessment.Service
	repo          *fakeAssessmentRepository
	users         *fakeIdentityRepository
	notifications *fakeNotificationService
}

func setupAssessmentServiceTest(t *testing.T) *assessmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAssessmentRepository{}
	users := &fakeIdentityRepository{}
	notifications := &fakeNotificationService{}
	svc := assessment.NewService(db, repo, users, notifications)

	return &assessmentServiceDeps{
		db:            db,
		sqlMock:       sqlMock,
		service:       svc,
		repo:          repo,
		users:         users,
		notifications: notifications,
	}
}

func expectAssessmentTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingAssessment(employeeID, supervisorID uuid.UUID) *assessment.SupervisorAssessment {
	return &assessment.SupervisorAssessment{
		ID:           uuid.New(),
		UserID:       employeeID,
		SupervisorID: supervisorID,
		Status:       assessment.StatusPendingCertificate,
	}
}

func withCertificate(a *assessment.SupervisorAssessment) *assessment.SupervisorAssessment {
	now := time.Now().UTC()
	file := "phase1-cert.pdf"
	a.CertificateFile = &file
	a.CertificateUploadDate = &now
	return a
}

func withAssessment(a *assessment.SupervisorAssessment, score int) *assessment.SupervisorAssessment {
	now := time.Now().UTC()
	a.AssessmentDate = &now
	a.AssessmentScore = &score
	return a
}

func withSupervisorDecision(a *assessment.SupervisorAssessment, decision string) *assessment.SupervisorAssessment {
	now := time.Now().UTC()
	a.SupervisorDecision = &decision
	a.DecisionDate = &now
	return a
}

func TestAssessmentService_Open(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()
	hr := authz.Actor{UserID: uuid.New().String(), Role: authz.RoleHR}

	t.Run("hr opens a pipeline at pending_certificate", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		var created *assessment.SupervisorAssessment
		deps.repo.createFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			created = a
			return nil
		}

		resp, err := deps.service.Open(ctx, hr, assessment.OpenAssessmentRequest{
			UserID:       employeeID.String(),
			SupervisorID: supervisorID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "pending_certificate", resp.Status)
		assert.NotNil(t, created)
		assert.Len(t, deps.notifications.sent, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a second pipeline for the same user conflicts", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByUserFn = func(ctx context.Context, userID string) (*assessment.SupervisorAssessment, error) {
			return pendingAssessment(employeeID, supervisorID), nil
		}

		_, err := deps.service.Open(ctx, hr, assessment.OpenAssessmentRequest{
			UserID:       employeeID.String(),
			SupervisorID: supervisorID.String(),
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrAssessmentAlreadyExists)
	})

	t.Run("non-hr cannot open", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		actor := authz.Actor{UserID: supervisorID.String(), Role: authz.RoleSupervisor}
		_, err := deps.service.Open(ctx, actor, assessment.OpenAssessmentRequest{
			UserID:       employeeID.String(),
			SupervisorID: supervisorID.String(),
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrOpenForbidden)
	})
}

func TestAssessmentService_UploadCertificate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()

	t.Run("the employee moves the pipeline to assessment_pending", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := pendingAssessment(employeeID, supervisorID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		var saved *assessment.SupervisorAssessment
		deps.repo.updateFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			saved = a
			return nil
		}

		actor := authz.Actor{UserID: employeeID.String(), Role: authz.RoleEmployee}
		resp, err := deps.service.UploadCertificate(ctx, actor, a.ID.String(), assessment.UploadCertificateRequest{
			CertificateFile: "phase1-cert.pdf",
		})

		assert.NoError(t, err)
		assert.Equal(t, "assessment_pending", resp.Status)
		assert.NotNil(t, saved)
		assert.Equal(t, assessment.StatusAssessmentPending, saved.Status)
		assert.Len(t, deps.notifications.sent, 1)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a second upload is rejected with the current state", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		actor := authz.Actor{UserID: employeeID.String(), Role: authz.RoleEmployee}
		_, err := deps.service.UploadCertificate(ctx, actor, a.ID.String(), assessment.UploadCertificateRequest{
			CertificateFile: "another.pdf",
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrCertificateAlreadyUploaded)
	})

	t.Run("an unrelated user cannot upload", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := pendingAssessment(employeeID, supervisorID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		actor := authz.Actor{UserID: uuid.New().String(), Role: authz.RoleEmployee}
		_, err := deps.service.UploadCertificate(ctx, actor, a.ID.String(), assessment.UploadCertificateRequest{
			CertificateFile: "phase1-cert.pdf",
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrCertificateForbidden)
	})
}

func TestAssessmentService_SubmitAssessment(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()
	supervisor := authz.Actor{UserID: supervisorID.String(), Role: authz.RoleSupervisor}

	t.Run("the assigned supervisor records score and notes", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		var saved *assessment.SupervisorAssessment
		deps.repo.updateFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			saved = a
			return nil
		}

		notes := "Solid first phase"
		resp, err := deps.service.SubmitAssessment(ctx, supervisor, a.ID.String(), assessment.SubmitAssessmentRequest{
			Score: 87,
			Notes: &notes,
		})

		assert.NoError(t, err)
		assert.Equal(t, "decision_pending", resp.Status)
		assert.NotNil(t, saved)
		assert.Equal(t, 87, *saved.AssessmentScore)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a zero score is a valid score", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitAssessment(ctx, supervisor, a.ID.String(), assessment.SubmitAssessmentRequest{Score: 0})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a score above 100 is rejected", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitAssessment(ctx, supervisor, a.ID.String(), assessment.SubmitAssessmentRequest{Score: 101})

		assert.ErrorIs(t, err, assessmenterrors.ErrScoreOutOfRange)
	})

	t.Run("no certificate means no assessment", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := pendingAssessment(employeeID, supervisorID)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitAssessment(ctx, supervisor, a.ID.String(), assessment.SubmitAssessmentRequest{Score: 70})

		assert.ErrorIs(t, err, assessmenterrors.ErrCertificateRequired)
	})

	t.Run("only the assigned supervisor may assess", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		other := authz.Actor{UserID: uuid.New().String(), Role: authz.RoleSupervisor}
		_, err := deps.service.SubmitAssessment(ctx, other, a.ID.String(), assessment.SubmitAssessmentRequest{Score: 70})

		assert.ErrorIs(t, err, assessmenterrors.ErrNotAssignedSupervisor)
	})
}

func TestAssessmentService_SubmitDecision(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()
	supervisor := authz.Actor{UserID: supervisorID.String(), Role: authz.RoleSupervisor}

	t.Run("proceed_to_phase_2 hands off to hr", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := withAssessment(withCertificate(pendingAssessment(employeeID, supervisorID)), 80)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		hrID := uuid.New()
		deps.users.listByRoleFn = func(ctx context.Context, role string) ([]identity.User, error) {
			return []identity.User{{ID: hrID, Role: "hr"}}, nil
		}

		resp, err := deps.service.SubmitDecision(ctx, supervisor, a.ID.String(), assessment.SupervisorDecisionRequest{
			Decision: assessment.DecisionProceedToPhase2,
		})

		assert.NoError(t, err)
		assert.Equal(t, "hr_approval_pending", resp.Status)
		assert.Len(t, deps.notifications.sent, 1)
		assert.Equal(t, hrID.String(), deps.notifications.sent[0].UserID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("terminate closes the pipeline without hr", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := withAssessment(withCertificate(pendingAssessment(employeeID, supervisorID)), 30)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		var saved *assessment.SupervisorAssessment
		deps.repo.updateFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			saved = a
			return nil
		}

		resp, err := deps.service.SubmitDecision(ctx, supervisor, a.ID.String(), assessment.SupervisorDecisionRequest{
			Decision: assessment.DecisionTerminate,
		})

		assert.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.NotNil(t, saved)
		assert.Equal(t, assessment.DecisionTerminate, *saved.SupervisorDecision)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("a decision before the assessment is rejected", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitDecision(ctx, supervisor, a.ID.String(), assessment.SupervisorDecisionRequest{
			Decision: assessment.DecisionProceedToPhase2,
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrAssessmentRequired)
	})

	t.Run("a second decision is rejected", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withSupervisorDecision(withAssessment(withCertificate(pendingAssessment(employeeID, supervisorID)), 80), assessment.DecisionProceedToPhase2)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitDecision(ctx, supervisor, a.ID.String(), assessment.SupervisorDecisionRequest{
			Decision: assessment.DecisionTerminate,
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrDecisionAlreadyMade)
	})
}

func TestAssessmentService_SubmitHRDecision(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()
	hr := authz.Actor{UserID: uuid.New().String(), Role: authz.RoleHR}

	awaiting := func() *assessment.SupervisorAssessment {
		return withSupervisorDecision(
			withAssessment(withCertificate(pendingAssessment(employeeID, supervisorID)), 80),
			assessment.DecisionProceedToPhase2,
		)
	}

	t.Run("approve completes the pipeline and tells the employee", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := awaiting()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		var saved *assessment.SupervisorAssessment
		deps.repo.updateFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			saved = a
			return nil
		}

		resp, err := deps.service.SubmitHRDecision(ctx, hr, a.ID.String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionApprove,
		})

		assert.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.NotNil(t, saved)
		assert.Equal(t, assessment.StatusCompleted, saved.Status)
		assert.Len(t, deps.notifications.sent, 1)
		assert.Equal(t, employeeID.String(), deps.notifications.sent[0].UserID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("request_changes reopens the supervisor decision", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := awaiting()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}
		var saved *assessment.SupervisorAssessment
		deps.repo.updateFn = func(ctx context.Context, a *assessment.SupervisorAssessment) error {
			saved = a
			return nil
		}

		comments := "Please justify the score"
		resp, err := deps.service.SubmitHRDecision(ctx, hr, a.ID.String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionRequestChanges,
			Comments: &comments,
		})

		assert.NoError(t, err)
		assert.Equal(t, "decision_pending", resp.Status)
		assert.NotNil(t, saved)
		assert.Nil(t, saved.SupervisorDecision)
		assert.Nil(t, saved.HRDecision)
		assert.NotNil(t, saved.HRDecisionComments)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject lands in hr_rejected", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		expectAssessmentTx(t, deps.sqlMock, true)

		a := awaiting()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		resp, err := deps.service.SubmitHRDecision(ctx, hr, a.ID.String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionReject,
		})

		assert.NoError(t, err)
		assert.Equal(t, "hr_rejected", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("an hr decision outside hr_approval_pending is rejected", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withCertificate(pendingAssessment(employeeID, supervisorID))
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitHRDecision(ctx, hr, a.ID.String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionApprove,
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrNotAwaitingHRDecision)
	})

	t.Run("a closed pipeline takes no further decisions", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		a := withSupervisorDecision(
			withAssessment(withCertificate(pendingAssessment(employeeID, supervisorID)), 40),
			assessment.DecisionTerminate,
		)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
			return a, nil
		}

		_, err := deps.service.SubmitHRDecision(ctx, hr, a.ID.String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionApprove,
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrPipelineClosed)
	})

	t.Run("only hr records the hr decision", func(t *testing.T) {
		deps := setupAssessmentServiceTest(t)
		defer deps.db.Close()

		actor := authz.Actor{UserID: supervisorID.String(), Role: authz.RoleSupervisor}
		_, err := deps.service.SubmitHRDecision(ctx, actor, uuid.New().String(), assessment.HRDecisionRequest{
			Decision: assessment.HRDecisionApprove,
		})

		assert.ErrorIs(t, err, assessmenterrors.ErrHRDecisionForbidden)
	})
}

func TestAssessmentService_Get(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	supervisorID := uuid.New()

	a := pendingAssessment(employeeID, supervisorID)

	cases := []struct {
		name    string
		actor   authz.Actor
		wantErr bool
	}{
		{"the employee sees their own pipeline", authz.Actor{UserID: employeeID.String(), Role: authz.RoleEmployee}, false},
		{"the assigned supervisor sees it", authz.Actor{UserID: supervisorID.String(), Role: authz.RoleSupervisor}, false},
		{"hr sees everything", authz.Actor{UserID: uuid.New().String(), Role: authz.RoleHR}, false},
		{"an unrelated employee is rejected", authz.Actor{UserID: uuid.New().String(), Role: authz.RoleEmployee}, true},
		{"an unrelated supervisor is rejected", authz.Actor{UserID: uuid.New().String(), Role: authz.RoleSupervisor}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupAssessmentServiceTest(t)
			defer deps.db.Close()

			deps.repo.findByIDFn = func(ctx context.Context, id string) (*assessment.SupervisorAssessment, error) {
				return a, nil
			}

			_, err := deps.service.Get(ctx, tc.actor, a.ID.String())
			if tc.wantErr {
				assert.ErrorIs(t, err, assessmenterrors.ErrViewForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
