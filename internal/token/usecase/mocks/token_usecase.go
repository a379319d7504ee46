// Package mocks provides mock implementations of the token use cases for testing.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of usecase.TokenUseCase.
type MockTokenUseCase struct {
	mock.Mock
}

// NewMockTokenUseCase creates a MockTokenUseCase whose expectations are asserted
// when the test finishes.
func NewMockTokenUseCase(t *testing.T) *MockTokenUseCase {
	m := &MockTokenUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Generate mocks the Generate method of TokenUseCase.
func (m *MockTokenUseCase) Generate(ctx context.Context, length *int) (*tokenDomain.Token, error) {
	args := m.Called(ctx, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Token), args.Error(1)
}

// Checksum mocks the Checksum method of TokenUseCase.
func (m *MockTokenUseCase) Checksum(ctx context.Context, value string) (*tokenDomain.Checksum, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Checksum), args.Error(1)
}
