package throttle

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

type countingClient struct {
	calls atomic.Int32
}

func (c *countingClient) AnalyzeEmail(context.Context, *core.AnalysisRequest) (*core.AnalysisResult, error) {
	c.calls.Add(1)
	return &core.AnalysisResult{Category: core.CategoryGenuine}, nil
}

func TestBurstPassesThrough(t *testing.T) {
	next := &countingClient{}
	c := New(next, 0.001, 3, zap.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if next.calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", next.calls.Load())
	}
}

func TestWaitHonoursContext(t *testing.T) {
	next := &countingClient{}
	c := New(next, 0.001, 1, zap.NewNop())

	if _, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.AnalyzeEmail(ctx, &core.AnalysisRequest{}); err == nil {
		t.Fatalf("expected limiter error")
	}
	if next.calls.Load() != 1 {
		t.Fatalf("throttled call reached the analyzer")
	}
}

func TestDisabledLimit(t *testing.T) {
	next := &countingClient{}
	c := New(next, 0, 0, zap.NewNop())
	for i := 0; i < 50; i++ {
		if _, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

type closingClient struct {
	countingClient
	closed bool
}

func (c *closingClient) Close() error {
	c.closed = true
	return nil
}

func TestCloseReachesWrappedClient(t *testing.T) {
	next := &closingClient{}
	if err := New(next, 1, 1, zap.NewNop()).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !next.closed {
		t.Fatalf("wrapped client was not closed")
	}

	if err := New(&countingClient{}, 1, 1, zap.NewNop()).Close(); err != nil {
		t.Fatalf("Close without closer: %v", err)
	}
}
