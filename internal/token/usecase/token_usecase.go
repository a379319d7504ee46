package usecase

import (
	"context"
	"fmt"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
	tokenService "github.com/allisson/tokengen/internal/token/service"
)

type tokenUseCase struct {
	generator     tokenService.TokenGenerator
	calculator    tokenService.ChecksumCalculator
	defaultLength int
}

// NewTokenUseCase creates a TokenUseCase. A non-positive defaultLength falls back to
// tokenDomain.DefaultLength.
func NewTokenUseCase(
	generator tokenService.TokenGenerator,
	calculator tokenService.ChecksumCalculator,
	defaultLength int,
) TokenUseCase {
	if defaultLength <= 0 {
		defaultLength = tokenDomain.DefaultLength
	}
	return &tokenUseCase{
		generator:     generator,
		calculator:    calculator,
		defaultLength: defaultLength,
	}
}

// Generate resolves the requested length and draws a new token.
func (t *tokenUseCase) Generate(ctx context.Context, length *int) (*tokenDomain.Token, error) {
	n := t.defaultLength
	if length != nil {
		n = *length
	}
	value, err := t.generator.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &tokenDomain.Token{Value: value}, nil
}

// Checksum computes the code point checksum of value.
func (t *tokenUseCase) Checksum(ctx context.Context, value string) (*tokenDomain.Checksum, error) {
	return &tokenDomain.Checksum{Value: t.calculator.Calculate(value)}, nil
}
