package jobqueue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rkl-hq/season-engine/internal/platform/resilience"
)

func TestEnqueueRecomputeSeasonSetsQStashHeaders(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotDedup, gotForward, gotDelay string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDedup = r.Header.Get("Upstash-Deduplication-Id")
		gotForward = r.Header.Get("Upstash-Forward-X-Internal-Job-Token")
		gotDelay = r.Header.Get("Upstash-Delay")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "qstash-token",
		TargetBaseURL:    "https://engine.internal",
		InternalJobToken: "job-token",
	}, nil)

	if err := publisher.EnqueueRecomputeSeason(context.Background(), "krl-2026", 30*time.Second); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if gotPath != "/v2/publish/https://engine.internal/v1/internal/jobs/recompute-season" {
		t.Fatalf("unexpected publish path: %s", gotPath)
	}
	if gotDedup != "recompute-season-krl-2026" {
		t.Fatalf("unexpected deduplication id: %s", gotDedup)
	}
	if gotForward != "job-token" {
		t.Fatalf("internal job token was not forwarded: %q", gotForward)
	}
	if gotDelay != "30s" {
		t.Fatalf("unexpected delay header: %q", gotDelay)
	}
}

func TestEnqueueRejectsEmptySeason(t *testing.T) {
	t.Parallel()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       "https://qstash.example.com",
		Token:         "t",
		TargetBaseURL: "https://engine.internal",
	}, nil)

	if err := publisher.EnqueueRecomputeSeason(context.Background(), " ", 0); err == nil {
		t.Fatal("expected error for empty season id")
	}
}

func TestEnqueueOpensCircuitAfterRepeatedServerErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		Token:         "t",
		TargetBaseURL: "https://engine.internal",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
		},
	}, nil)

	for i := 0; i < 2; i++ {
		if err := publisher.EnqueueRecomputeSeason(context.Background(), "s1", 0); err == nil {
			t.Fatal("expected transient failure")
		}
	}

	err := publisher.EnqueueRecomputeSeason(context.Background(), "s1", 0)
	if err == nil {
		t.Fatal("expected circuit-open rejection")
	}
	if publisher.breaker.State() != resilience.CircuitStateOpen {
		t.Fatalf("breaker state = %s, want open", publisher.breaker.State())
	}
}
