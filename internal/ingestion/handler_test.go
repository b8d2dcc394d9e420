package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	v1 "github.com/aevon-lab/anomaly-explorer/internal/api/v1"
	"github.com/aevon-lab/anomaly-explorer/internal/core/aggregation"
	httperr "github.com/aevon-lab/anomaly-explorer/internal/core/errors"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/aevon-lab/anomaly-explorer/internal/core/storage"
	storagemocks "github.com/aevon-lab/anomaly-explorer/internal/mocks/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var received = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store storage.AnnotationStore) (*Service, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jobs := job.NewMemoryRepository(job.Job{
		JobID:      "farequote",
		BucketSpan: aggregation.Interval{Duration: 15 * time.Minute, Expression: "15m"},
		Detectors:  []job.Detector{{Function: "count"}},
	})
	svc := NewService(jobs, store, 1)
	svc.nowFn = func() time.Time { return received }
	svc.newID = func() string { return "3f1c2a7e-0000-4000-8000-000000000001" }

	r := gin.New()
	svc.RegisterRoutes(r)
	return svc, r
}

func post(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/annotations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIngestHandler_Success(t *testing.T) {
	mockStore := storagemocks.NewAnnotationStore(t)
	mockStore.EXPECT().
		SaveAnnotation(mock.Anything, mock.MatchedBy(func(a *v1.Annotation) bool {
			return a.ID == "3f1c2a7e-0000-4000-8000-000000000001" &&
				a.Type == v1.AnnotationTypeAnnotation &&
				a.CreateTime.Equal(received) &&
				a.CreateUsername == "alice" &&
				a.ModifiedUsername == "alice"
		})).
		Return(nil).
		Once()

	_, r := newTestService(t, mockStore)

	resp := post(r, []byte(`{
		"id": "client-chosen",
		"job_id": "farequote",
		"annotation": "deployed v2",
		"timestamp": "2026-02-08T10:00:00Z",
		"end_timestamp": "2026-02-08T10:30:00Z",
		"detector_index": 0,
		"create_username": "alice"
	}`))

	require.Equal(t, http.StatusCreated, resp.Code)
	var stored v1.Annotation
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stored))
	require.Equal(t, "3f1c2a7e-0000-4000-8000-000000000001", stored.ID)
	require.Equal(t, "user", stored.Event)
}

func TestIngestHandler_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedType   string
	}{
		{
			name:           "invalid json",
			body:           `{"job_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   httperr.HttpInvalidJsonError,
		},
		{
			name:           "missing text",
			body:           `{"job_id":"farequote","timestamp":"2026-02-08T10:00:00Z"}`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   httperr.HttpAnnotationInvalidError,
		},
		{
			name:           "end before start",
			body:           `{"job_id":"farequote","annotation":"x","timestamp":"2026-02-08T10:00:00Z","end_timestamp":"2026-02-08T09:00:00Z"}`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   httperr.HttpAnnotationInvalidError,
		},
		{
			name:           "unknown detector",
			body:           `{"job_id":"farequote","annotation":"x","timestamp":"2026-02-08T10:00:00Z","detector_index":3}`,
			expectedStatus: http.StatusBadRequest,
			expectedType:   httperr.HttpAnnotationInvalidError,
		},
		{
			name:           "unknown job",
			body:           `{"job_id":"nope","annotation":"x","timestamp":"2026-02-08T10:00:00Z"}`,
			expectedStatus: http.StatusNotFound,
			expectedType:   httperr.HttpJobNotFoundError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, r := newTestService(t, storagemocks.NewAnnotationStore(t))

			resp := post(r, []byte(tc.body))
			require.Equal(t, tc.expectedStatus, resp.Code)

			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, tc.expectedType, body.ErrorType)
		})
	}
}

func TestIngestHandler_StoreErrors(t *testing.T) {
	tests := []struct {
		name           string
		storeErr       error
		expectedStatus int
		expectedType   string
	}{
		{
			name:           "duplicate",
			storeErr:       storage.ErrDuplicate,
			expectedStatus: http.StatusConflict,
			expectedType:   httperr.HttpDuplicateAnnotation,
		},
		{
			name:           "database failure",
			storeErr:       errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedType:   httperr.HttpInternalError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockStore := storagemocks.NewAnnotationStore(t)
			mockStore.EXPECT().SaveAnnotation(mock.Anything, mock.Anything).Return(tc.storeErr).Once()
			_, r := newTestService(t, mockStore)

			resp := post(r, []byte(`{"job_id":"farequote","annotation":"x","timestamp":"2026-02-08T10:00:00Z"}`))
			require.Equal(t, tc.expectedStatus, resp.Code)

			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.Equal(t, tc.expectedType, body.ErrorType)
		})
	}
}

func TestIngestHandler_BodySizeLimit(t *testing.T) {
	_, r := newTestService(t, storagemocks.NewAnnotationStore(t))

	text := strings.Repeat("x", 2*1024*1024)
	resp := post(r, []byte(`{"job_id":"farequote","annotation":"`+text+`","timestamp":"2026-02-08T10:00:00Z"}`))
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}
