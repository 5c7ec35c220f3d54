package contact

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func submitJSON(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler().RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitValid(t *testing.T) {
	w := submitJSON(t, `{"name":"Ana","email":"ana@example.test","message":"quisiera consultar por una obra"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"A","email":"ana@example.test","message":"mensaje suficientemente largo"}`},
		{"bad email", `{"name":"Ana","email":"not-an-email","message":"mensaje suficientemente largo"}`},
		{"short message", `{"name":"Ana","email":"ana@example.test","message":"corto"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submitJSON(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}
