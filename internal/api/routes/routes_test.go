package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	r := gin.New()
	RegisterRoutes(r, Deps{Log: log, JWTSecret: "test-secret"})
	return r
}

func TestPingLivesUnderAPIPrefix(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/ping status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "pong" {
		t.Errorf("body = %v", body)
	}
}

func TestPublishToggleRoute(t *testing.T) {
	r := testRouter(t)

	// the toggle keeps its historical path, distinct from the reviews resource
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/avis/7/publish", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("PATCH /api/avis/7/publish without token status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/reviews/7/publish", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("PATCH /api/reviews/7/publish status = %d, want 404", w.Code)
	}
}
