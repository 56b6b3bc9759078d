package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_HeaderIsSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != 200 {
		t.Fatalf("code=%d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestRequestID_Propagation(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses caller id", incoming: "abc-123", reuse: true},
		{name: "generates when absent", incoming: "", reuse: false},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 65), reuse: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got != seen {
				t.Fatalf("header %q differs from context %q", got, seen)
			}
			if tc.reuse && got != tc.incoming {
				t.Fatalf("expected %q, got %q", tc.incoming, got)
			}
			if !tc.reuse && (got == "" || got == tc.incoming) {
				t.Fatalf("expected a generated id, got %q", got)
			}
		})
	}
}
