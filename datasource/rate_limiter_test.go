package datasource

import (
	"context"
	"testing"
)

type stubSource struct {
	calls int
}

func (s *stubSource) Name() string { return "Stub" }

func (s *stubSource) FetchForecast(ctx context.Context, location string, days int) (*ForecastResponse, error) {
	s.calls++
	return &ForecastResponse{}, nil
}

func TestRateLimitedForecastSource(t *testing.T) {
	stub := &stubSource{}
	limited := NewRateLimitedForecastSource(stub, 1, 1)

	if limited.Name() != "Stub [Rate Limited]" {
		t.Errorf("name = %q", limited.Name())
	}

	// The first call fits in the burst and must go straight through
	if _, err := limited.FetchForecast(context.Background(), "London", 3); err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("underlying source called %d times, want 1", stub.calls)
	}
}

func TestRateLimitedForecastSourceCanceledContext(t *testing.T) {
	stub := &stubSource{}
	// Zero burst means the limiter can never admit the request
	limited := NewRateLimitedForecastSource(stub, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := limited.FetchForecast(ctx, "London", 3); err == nil {
		t.Fatal("expected error from canceled context")
	}
	if stub.calls != 0 {
		t.Errorf("underlying source called %d times, want 0", stub.calls)
	}
}
