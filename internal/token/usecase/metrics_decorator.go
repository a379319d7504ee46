package usecase

import (
	"context"
	"time"

	"github.com/allisson/tokengen/internal/metrics"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for token generation.
func (t *tokenUseCaseWithMetrics) Generate(ctx context.Context, length *int) (*tokenDomain.Token, error) {
	start := time.Now()
	token, err := t.next.Generate(ctx, length)
	t.record(ctx, "generate", start, err)
	return token, err
}

// Checksum records metrics for checksum calculation.
func (t *tokenUseCaseWithMetrics) Checksum(ctx context.Context, value string) (*tokenDomain.Checksum, error) {
	start := time.Now()
	checksum, err := t.next.Checksum(ctx, value)
	t.record(ctx, "checksum", start, err)
	return checksum, err
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", operation, status)
	t.metrics.RecordDuration(ctx, "token", operation, time.Since(start), status)
}
