package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Validation-only tests: these return 400 before touching the service
// layer. Happy paths are covered by the queue integration tests, which
// have a real database behind the services.

func newTestContext(method, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, wantCode int, wantMsg string) {
	t.Helper()
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, wantCode, he.Code)
			assert.Contains(t, he.Message, wantMsg)
		}
	}
}

func TestPullJobHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing role", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/api/v1/jobs/pull?owner=pod-a", "")
		assertHTTPError(t, s.pullJobHandler(c), http.StatusBadRequest, "role")
	})

	t.Run("missing owner", func(t *testing.T) {
		c, _ := newTestContext(http.MethodGet, "/api/v1/jobs/pull?role=coder", "")
		assertHTTPError(t, s.pullJobHandler(c), http.StatusBadRequest, "owner")
	})
}

func TestPushJobHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing job_id", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/v1/jobs/push", `{"result": "{}"}`)
		assertHTTPError(t, s.pushJobHandler(c), http.StatusBadRequest, "job_id")
	})

	t.Run("missing result and error", func(t *testing.T) {
		c, _ := newTestContext(http.MethodPost, "/api/v1/jobs/push", `{"job_id": "j-1"}`)
		assertHTTPError(t, s.pushJobHandler(c), http.StatusBadRequest, "result or error")
	})
}

func TestCreateJobHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodPost, "/api/v1/jobs/create", `{"role": "coder"}`)
	assertHTTPError(t, s.createJobHandler(c), http.StatusBadRequest, "payload")
}

func TestListJobsHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newTestContext(http.MethodGet, "/api/v1/jobs/list", "")
	assertHTTPError(t, s.listJobsHandler(c), http.StatusBadRequest, "pipeline_id")
}
