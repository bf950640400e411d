package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iug/student-portal/internal/app/models/dto"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Register(router)
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServesIndex(t *testing.T) {
	rec := doGet(newTestRouter(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
}

func TestClientRoutesFallBackToIndex(t *testing.T) {
	router := newTestRouter()
	index := doGet(router, "/").Body.String()

	for _, path := range []string{"/login", "/register", "/dashboard"} {
		rec := doGet(router, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
		if rec.Body.String() != index {
			t.Errorf("GET %s did not serve the app shell", path)
		}
	}
}

func TestServesStaticAssets(t *testing.T) {
	router := newTestRouter()

	rec := doGet(router, "/app.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("content type = %q, want application/javascript", ct)
	}
}

func TestUnknownAPIPathReturnsErrorEnvelope(t *testing.T) {
	rec := doGet(newTestRouter(), "/api/nonsense")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response %q is not an error envelope: %v", rec.Body.String(), err)
	}
	if resp.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("code = %q, want %q", resp.Error.Code, dto.ErrorCodeResourceNotFound)
	}
	if resp.Error.Message == "" {
		t.Error("error envelope has no message")
	}
}
