package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/bfhl/internal/apperr"
	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/identity"
	"github.com/DjordjeVuckovic/bfhl/internal/service"
	"github.com/DjordjeVuckovic/bfhl/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remoteDown struct{}

func (remoteDown) Classify(context.Context, []string) (*dto.ClassifyResponse, error) {
	return nil, apperr.NewRemote(http.StatusServiceUnavailable, nil)
}

func newTestEcho(classifier service.Classifier) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.Renderer = view.MustNewRenderer()
	NewBfhlRouter(e, classifier).Bind()
	NewFormRouter(e, classifier).Bind()
	return e
}

func localClassifier() service.Classifier {
	return service.NewLocal(identity.Identity{
		UserID:     "john_doe_17091999",
		Email:      "john@xyz.com",
		RollNumber: "ABCD123",
	})
}

func TestBfhl_Post(t *testing.T) {
	e := newTestEcho(localClassifier())

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "classifies tokens",
			body:       `{"data": ["M","1","334","4","B"]}`,
			wantStatus: http.StatusOK,
			wantBody: `{
				"is_success": true,
				"user_id": "john_doe_17091999",
				"email": "john@xyz.com",
				"roll_number": "ABCD123",
				"numbers": ["1","334","4"],
				"alphabets": ["M","B"],
				"highest_alphabet": ["M"]
			}`,
		},
		{
			name:       "empty data",
			body:       `{"data": []}`,
			wantStatus: http.StatusOK,
			wantBody: `{
				"is_success": true,
				"user_id": "john_doe_17091999",
				"email": "john@xyz.com",
				"roll_number": "ABCD123",
				"numbers": [],
				"alphabets": [],
				"highest_alphabet": []
			}`,
		},
		{
			name:       "malformed json",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"is_success": false, "error": "Invalid JSON format. Use {\"data\": [\"A\",\"1\",\"B\",\"2\"]}", "title": "validation error"}`,
		},
		{
			name:       "missing data",
			body:       `{"items": []}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"is_success": false, "error": "Invalid JSON format. Use {\"data\": [\"A\",\"1\",\"B\",\"2\"]}", "title": "validation error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestBfhl_PostRemoteFailure(t *testing.T) {
	e := newTestEcho(remoteDown{})

	req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"data": ["A"]}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"is_success": false, "error": "Failed to process data. Please check your input."}`, rec.Body.String())
}

func TestBfhl_Get(t *testing.T) {
	e := newTestEcho(localClassifier())

	req := httptest.NewRequest(http.MethodGet, "/bfhl", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"operation_code": 1}`, rec.Body.String())
}

func postForm(t *testing.T, e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestForm_Index(t *testing.T) {
	e := newTestEcho(localClassifier())

	req := httptest.NewRequest(http.MethodGet, "/?filter=numbers", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="filter" value="numbers"`)
	assert.NotContains(t, rec.Body.String(), "Filter Results")
}

func TestForm_Submit(t *testing.T) {
	e := newTestEcho(localClassifier())

	rec := postForm(t, e, url.Values{
		"data":   {`{"data": ["A","1","B","2"]}`},
		"filter": {"all"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<span class="value-chip highlight">B</span>`)
	assert.Contains(t, body, `id="alphabets"`)
	assert.Contains(t, body, `id="numbers"`)
}

func TestForm_Toggle(t *testing.T) {
	e := newTestEcho(localClassifier())
	input := `{"data": ["A","1","B","2"]}`

	rec := postForm(t, e, url.Values{
		"data":   {input},
		"filter": {"all"},
		"toggle": {"numbers"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="filter" value="numbers"`)
	assert.Contains(t, body, `id="numbers"`)
	assert.NotContains(t, body, `id="alphabets"`)

	rec = postForm(t, e, url.Values{
		"data":   {input},
		"filter": {"numbers"},
		"toggle": {"numbers"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, `name="filter" value="all"`)
	assert.Contains(t, body, `id="alphabets"`)
}

func TestForm_InvalidInput(t *testing.T) {
	e := newTestEcho(localClassifier())

	rec := postForm(t, e, url.Values{"data": {"not json"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `<div class="error">Invalid JSON format.`)
	assert.NotContains(t, rec.Body.String(), "Filter Results")
}

func TestForm_RemoteFailure(t *testing.T) {
	e := newTestEcho(remoteDown{})

	rec := postForm(t, e, url.Values{"data": {`{"data": ["A"]}`}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process data. Please check your input.")
	assert.NotContains(t, rec.Body.String(), "Filter Results")
}
