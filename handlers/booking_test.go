package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scheduler/models"
	"scheduler/services/booking"
)

type stubService struct {
	listResult models.ReservationMap
	listErr    error
	createErr  error
	gotDate    string
	gotReq     models.CreateReservationRequest
}

func (s *stubService) ListReservations(_ context.Context, date string) (models.ReservationMap, error) {
	s.gotDate = date
	return s.listResult, s.listErr
}

func (s *stubService) CreateReservation(_ context.Context, req models.CreateReservationRequest) (*models.Reservation, error) {
	s.gotReq = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Reservation{
		ID:        "internal-id",
		Date:      req.Date,
		StartTime: req.StartTime,
		Title:     req.Title,
		Content:   req.Content,
	}, nil
}

func newRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/booking/list/:date", h.ListReservations)
	r.POST("/booking", h.CreateReservation)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListReservationsOK(t *testing.T) {
	svc := &stubService{listResult: models.ReservationMap{
		"20240101": {"9": {Title: "standup", Content: "daily"}},
	}}
	w := do(newRouter(svc), http.MethodGet, "/booking/list/20240101", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "20240101", svc.gotDate)
	assert.JSONEq(t, `{"20240101":{"9":{"title":"standup","content":"daily"}}}`, w.Body.String())
}

func TestListReservationsEmpty(t *testing.T) {
	w := do(newRouter(&stubService{listResult: models.ReservationMap{}}), http.MethodGet, "/booking/list/20240101", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestListReservationsErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"malformed date", &booking.Error{Kind: booking.KindValidation, Message: "Invalid date format"}, http.StatusBadRequest, `{"error":"Invalid date format"}`},
		{"store failure", &booking.Error{Kind: booking.KindInternal, Message: "Internal server error", Err: errors.New("timeout")}, http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"untyped failure", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&stubService{listErr: tt.err}), http.MethodGet, "/booking/list/2024", "")
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestCreateReservationCreated(t *testing.T) {
	svc := &stubService{}
	body := `{"date":"20240315","start_time":"9","title":"standup","content":"daily sync"}`
	w := do(newRouter(svc), http.MethodPost, "/booking", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.CreateReservationRequest{Date: "20240315", StartTime: "9", Title: "standup", Content: "daily sync"}, svc.gotReq)
	assert.JSONEq(t, `{
		"message": "Reservation created successfully",
		"reservation": {"date":"20240315","start_time":"9","title":"standup","content":"daily sync"}
	}`, w.Body.String())
}

func TestCreateReservationErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		check  func(t *testing.T, out map[string]any)
	}{
		{
			name:   "missing content",
			body:   `{"date":"20240315","start_time":"9","title":"t"}`,
			err:    &booking.Error{Kind: booking.KindValidation, Message: "All fields are required", Missing: []string{"content"}},
			status: http.StatusBadRequest,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "All fields are required", out["error"])
				assert.Equal(t, []any{"content"}, out["missing"])
			},
		},
		{
			name:   "bad date",
			body:   `{"date":"2024131","start_time":"9","title":"t","content":"c"}`,
			err:    &booking.Error{Kind: booking.KindValidation, Message: "Invalid date format"},
			status: http.StatusBadRequest,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Invalid date format", out["error"])
				assert.NotContains(t, out, "missing")
			},
		},
		{
			name:   "slot taken",
			body:   `{"date":"20240315","start_time":"9","title":"t","content":"c"}`,
			err:    &booking.Error{Kind: booking.KindConflict, Message: "This time slot is already reserved"},
			status: http.StatusConflict,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "This time slot is already reserved", out["error"])
			},
		},
		{
			name:   "store failure",
			body:   `{"date":"20240315","start_time":"9","title":"t","content":"c"}`,
			err:    &booking.Error{Kind: booking.KindInternal, Message: "Internal server error", Err: errors.New("no reachable servers")},
			status: http.StatusInternalServerError,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Internal server error", out["error"])
				assert.NotContains(t, out, "details")
			},
		},
		{
			name:   "malformed json",
			body:   `{"date":20240315}`,
			status: http.StatusBadRequest,
			check: func(t *testing.T, out map[string]any) {
				assert.Equal(t, "Invalid request payload", out["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&stubService{createErr: tt.err}), http.MethodPost, "/booking", tt.body)
			assert.Equal(t, tt.status, w.Code)
			tt.check(t, decode(t, w))
		})
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", HealthHandler(nil))

	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "ok", out["status"])
	assert.NotEmpty(t, out["message"])
}

func TestCreateReservationRejectsNumericStartTime(t *testing.T) {
	svc := &stubService{}
	w := do(newRouter(svc), http.MethodPost, "/booking", `{"date":"20240315","start_time":9,"title":"t","content":"c"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := decode(t, w)
	assert.Equal(t, "Invalid request payload", out["error"])
	assert.Contains(t, out["details"], "start_time")
	assert.Empty(t, svc.gotReq.Date)
}
