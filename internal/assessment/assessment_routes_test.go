package assessment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-onboarding/internal/assessment"
	"go-onboarding/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type routesApiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type routesApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *routesApiError `json:"error"`
}

type fakeAssessmentService struct {
	openFn func(ctx context.Context, actor authz.Actor, req assessment.OpenAssessmentRequest) (assessment.AssessmentResponse, error)
}

func (f *fakeAssessmentService) Open(ctx context.Context, actor authz.Actor, req assessment.OpenAssessmentRequest) (assessment.AssessmentResponse, error) {
	return f.openFn(ctx, actor, req)
}

func (f *fakeAssessmentService) Get(ctx context.Context, actor authz.Actor, id string) (assessment.AssessmentResponse, error) {
	return assessment.AssessmentResponse{}, nil
}

func (f *fakeAssessmentService) UploadCertificate(ctx context.Context, actor authz.Actor, id string, req assessment.UploadCertificateRequest) (assessment.AssessmentResponse, error) {
	return assessment.AssessmentResponse{}, nil
}

func (f *fakeAssessmentService) SubmitAssessment(ctx context.Context, actor authz.Actor, id string, req assessment.SubmitAssessmentRequest) (assessment.AssessmentResponse, error) {
	return assessment.AssessmentResponse{}, nil
}

func (f *fakeAssessmentService) SubmitDecision(ctx context.Context, actor authz.Actor, id string, req assessment.SupervisorDecisionRequest) (assessment.AssessmentResponse, error) {
	return assessment.AssessmentResponse{}, nil
}

func (f *fakeAssessmentService) SubmitHRDecision(ctx context.Context, actor authz.Actor, id string, req assessment.HRDecisionRequest) (assessment.AssessmentResponse, error) {
	return assessment.AssessmentResponse{}, nil
}

func assessmentRouter(svc assessment.Service, rdb *redis.Client) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	assessment.RegisterRoutes(api, assessment.NewHandlerWithRedis(svc, rdb), rdb)
	return router
}

func signedToken(t *testing.T, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
	})
	signed, err := token.SignedString([]byte("routes-test-secret"))
	assert.NoError(t, err)
	return signed
}

// The idempotency cache sits behind the auth and role gates, so an
// idempotency key alone must never stand in for credentials.
func TestAssessmentRoutes_IdempotencyRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "routes-test-secret")

	openBody := `{"userId":"` + uuid.New().String() + `","supervisorId":"` + uuid.New().String() + `"}`

	t.Run("an unauthenticated caller gets 401 and never touches the cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		svc := &fakeAssessmentService{
			openFn: func(ctx context.Context, actor authz.Actor, req assessment.OpenAssessmentRequest) (assessment.AssessmentResponse, error) {
				t.Fatal("an unauthenticated request must not reach the service")
				return assessment.AssessmentResponse{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(openBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "replay-key")
		assessmentRouter(svc, rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var env routesApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("a non-hr caller gets 403 before any cache lookup", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		svc := &fakeAssessmentService{
			openFn: func(ctx context.Context, actor authz.Actor, req assessment.OpenAssessmentRequest) (assessment.AssessmentResponse, error) {
				t.Fatal("a forbidden request must not reach the service")
				return assessment.AssessmentResponse{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(openBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "replay-key")
		req.Header.Set("Authorization", "Bearer "+signedToken(t, uuid.New().String(), "employee"))
		assessmentRouter(svc, rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("an authorized retry replays from a key scoped to the caller", func(t *testing.T) {
		hrID := uuid.New().String()
		cached := assessment.AssessmentResponse{
			ID:     uuid.New().String(),
			UserID: uuid.New().String(),
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet("idemp:/api/v1/assessments:" + hrID + ":replay-key").SetVal(string(payload))

		svc := &fakeAssessmentService{
			openFn: func(ctx context.Context, actor authz.Actor, req assessment.OpenAssessmentRequest) (assessment.AssessmentResponse, error) {
				t.Fatal("a replayed request must not reach the service")
				return assessment.AssessmentResponse{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments", strings.NewReader(openBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "replay-key")
		req.Header.Set("Authorization", "Bearer "+signedToken(t, hrID, "hr"))
		assessmentRouter(svc, rdb).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env routesApiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		var got assessment.AssessmentResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, cached.ID, got.ID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
