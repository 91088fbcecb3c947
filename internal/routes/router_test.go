package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/share_registry/internal/auth"
	"github.com/share_registry/internal/handlers"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, Handlers{
		Auth:        handlers.NewAuthHandler(nil),
		Cases:       handlers.NewCaseHandler(nil, nil),
		Companies:   handlers.NewCompanyHandler(nil),
		Registrars:  handlers.NewRegistrarHandler(nil, nil),
		NameChanges: handlers.NewNameChangeHandler(nil),
	}, "test-secret", auth.NewMemoryDenylist())
	return r
}

func TestSetupRoutes_Registered(t *testing.T) {
	r := newTestRouter()

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"GET /api/v1/cases",
		"GET /api/v1/cases/:id/view",
		"POST /api/v1/cases/:id/document",
		"GET /api/v1/cases/:id/bundle",
		"DELETE /api/v1/companies/:id",
		"PUT /api/v1/registrar-branches/:id",
		"GET /api/v1/name-changes",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSetupRoutes_RequireToken(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/v1/cases", "/api/v1/companies", "/api/v1/registrars/1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRoutes_SwaggerDoc(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/cases/{id}/bundle")
}
