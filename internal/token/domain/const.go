// Package domain defines the token module's core types: randomly generated tokens
// and their additive code point checksums.
package domain

// Token generation constants.
const (
	// RandomBytesLength is the number of random bytes drawn for every token.
	RandomBytesLength = 64

	// DefaultLength is the token length used when a caller does not specify one.
	DefaultLength = 20

	// MaxEncodedLength is the length of RandomBytesLength bytes in padded standard base64.
	// Requests for longer tokens get the whole encoded string.
	MaxEncodedLength = ((RandomBytesLength + 2) / 3) * 4
)
