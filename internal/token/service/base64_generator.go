package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

type base64Generator struct {
	random io.Reader
}

// NewBase64Generator creates a token generator backed by crypto/rand. Each token is
// RandomBytesLength random bytes encoded with padded standard base64.
func NewBase64Generator() TokenGenerator {
	return NewBase64GeneratorWithReader(rand.Reader)
}

// NewBase64GeneratorWithReader creates a base64 token generator reading its random
// bytes from r. Production code should use NewBase64Generator.
func NewBase64GeneratorWithReader(r io.Reader) TokenGenerator {
	return &base64Generator{random: r}
}

// Generate draws RandomBytesLength random bytes, base64-encodes them and returns the
// first length characters. A length beyond MaxEncodedLength yields the whole encoded
// string rather than an error. A negative length drops that many characters from the
// end, down to the empty string.
func (g *base64Generator) Generate(length int) (string, error) {
	raw := make([]byte, tokenDomain.RandomBytesLength)
	if _, err := io.ReadFull(g.random, raw); err != nil {
		return "", fmt.Errorf("%w: %w", tokenDomain.ErrRandomSource, err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	if length < 0 {
		length = max(len(encoded)+length, 0)
	}
	if length > len(encoded) {
		length = len(encoded)
	}

	return encoded[:length], nil
}
