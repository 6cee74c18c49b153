package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Actor())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, ActorFrom(c)) })

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", ""},
		{"trimmed", "  hr@example.com ", "hr@example.com"},
		{"truncated", strings.Repeat("a", 300), strings.Repeat("a", 255)},
		{"multi-byte truncated on a rune boundary", strings.Repeat("é", 300), strings.Repeat("é", 255)},
		{"multi-byte under the limit", strings.Repeat("é", 200), strings.Repeat("é", 200)},
		{"invalid bytes dropped", "hr\xff@example.com", "hr@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(ActorHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Body.String())
			assert.True(t, utf8.ValidString(w.Body.String()))
		})
	}
}
