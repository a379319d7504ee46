/*
Package token provides random token generation and code point checksums.

# Architecture

  - domain: Token and Checksum types, generation constants, errors
  - service: base64 random generator and checksum calculator
  - usecase: orchestration plus the metrics decorator
  - http: gin handlers and DTOs

# Token Generation

Every token starts as 64 bytes from crypto/rand encoded with padded standard base64,
which is 88 characters. The caller receives the first length characters (default 20):

	token, err := tokenUseCase.Generate(ctx, nil) // 20 characters
	token, err = tokenUseCase.Generate(ctx, &n)   // n characters, at most 88

Tokens may contain '+', '/' and '='. They carry no uniqueness or expiry guarantees.

# Checksums

A checksum is the sum of the Unicode code points of a string, with no normalization:

	checksum, _ := tokenUseCase.Checksum(ctx, "AB") // checksum.Value == 131

It is an integrity indicator only, not a cryptographic guarantee.
*/
package token
