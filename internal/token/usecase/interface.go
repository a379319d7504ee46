// Package usecase defines the token module's use cases: generating random tokens and
// computing code point checksums.
package usecase

import (
	"context"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// TokenUseCase defines the interface for token operations.
type TokenUseCase interface {
	// Generate returns a random token of the requested length. A nil length selects the
	// configured default. Lengths beyond MaxEncodedLength are capped, negative ones drop
	// characters from the end of the encoded token.
	Generate(ctx context.Context, length *int) (*tokenDomain.Token, error)

	// Checksum returns the sum of the Unicode code points of value.
	Checksum(ctx context.Context, value string) (*tokenDomain.Checksum, error)
}
