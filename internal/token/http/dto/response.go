package dto

import (
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

// GenerateTokenResponse represents a generated token in API responses.
type GenerateTokenResponse struct {
	Token string `json:"token"`
}

// ChecksumResponse represents a computed checksum in API responses.
type ChecksumResponse struct {
	Checksum int64 `json:"checksum"`
}

// MapTokenToGenerateTokenResponse converts a domain token to an API response.
func MapTokenToGenerateTokenResponse(token *tokenDomain.Token) GenerateTokenResponse {
	return GenerateTokenResponse{Token: token.Value}
}

// MapChecksumToChecksumResponse converts a domain checksum to an API response.
func MapChecksumToChecksumResponse(checksum *tokenDomain.Checksum) ChecksumResponse {
	return ChecksumResponse{Checksum: checksum.Value}
}
