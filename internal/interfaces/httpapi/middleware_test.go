package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireInternalJobToken(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{name: "valid token", configured: "secret", provided: "secret", wantStatus: http.StatusNoContent},
		{name: "wrong token", configured: "secret", provided: "nope", wantStatus: http.StatusUnauthorized},
		{name: "missing token", configured: "secret", provided: "", wantStatus: http.StatusUnauthorized},
		{name: "token not configured", configured: "", provided: "secret", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/recompute-season", nil)
			if tc.provided != "" {
				req.Header.Set("X-Internal-Job-Token", tc.provided)
			}
			rec := httptest.NewRecorder()

			RequireInternalJobToken(tc.configured, next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	if shouldTraceRequest("/healthz") {
		t.Fatal("healthz should not be traced")
	}
	if !shouldTraceRequest("/v1/internal/jobs/recompute-season") {
		t.Fatal("job routes should be traced")
	}
}
