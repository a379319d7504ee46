// Package service provides the token module's algorithms: random token generation and
// code point checksums.
package service

// TokenGenerator defines the interface for random token generation.
type TokenGenerator interface {
	// Generate returns the first length characters of a freshly drawn random token.
	Generate(length int) (string, error)
}

// ChecksumCalculator defines the interface for checksum calculation.
type ChecksumCalculator interface {
	Calculate(value string) int64
}
