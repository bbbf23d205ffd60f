package throttle

import (
	"context"
	"fmt"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client limits the rate of calls to a wrapped LLMClient. Callers wait for a
// token; a cancelled context abandons the wait.
type Client struct {
	next    core.LLMClient
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New wraps next with a token bucket of perSecond calls and the given burst.
// A non-positive perSecond disables limiting.
func New(next core.LLMClient, perSecond float64, burst int, logger *zap.Logger) *Client {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Client{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// AnalyzeEmail waits for the limiter and forwards the request
func (c *Client) AnalyzeEmail(ctx context.Context, req *core.AnalysisRequest) (*core.AnalysisResult, error) {
	if !c.limiter.Allow() {
		c.logger.Debug("Waiting for analysis rate limit",
			zap.Float64("limit_per_second", float64(c.limiter.Limit())))
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}
	}
	return c.next.AnalyzeEmail(ctx, req)
}

// Close closes the wrapped client when it holds resources
func (c *Client) Close() error {
	if closer, ok := c.next.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
