package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return assertErr{} }

	cases := []struct {
		name     string
		checks   []Check
		path     string
		want     int
		wantDeps map[string]string
	}{
		{name: "healthz ok", checks: []Check{{Name: "postgres", Ping: down}}, path: "/healthz", want: 200},
		{name: "readyz ok", checks: []Check{{Name: "postgres", Ping: up}}, path: "/readyz", want: 200, wantDeps: map[string]string{"postgres": "up"}},
		{name: "readyz degraded", checks: []Check{{Name: "postgres", Ping: down}}, path: "/readyz", want: 503, wantDeps: map[string]string{"postgres": "down"}},
		{
			name:     "redis down degrades",
			checks:   []Check{{Name: "postgres", Ping: up}, {Name: "redis", Ping: down}},
			path:     "/readyz",
			want:     503,
			wantDeps: map[string]string{"postgres": "up", "redis": "down"},
		},
		{name: "nil ping ignored", checks: []Check{{Name: "redis"}}, path: "/readyz", want: 200, wantDeps: map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(tc.checks...).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if tc.wantDeps == nil {
				return
			}
			var body struct {
				Dependencies map[string]string `json:"dependencies"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("json: %v", err)
			}
			if len(body.Dependencies) != len(tc.wantDeps) {
				t.Fatalf("deps=%v want %v", body.Dependencies, tc.wantDeps)
			}
			for k, v := range tc.wantDeps {
				if body.Dependencies[k] != v {
					t.Fatalf("deps=%v want %v", body.Dependencies, tc.wantDeps)
				}
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
