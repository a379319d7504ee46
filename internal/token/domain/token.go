package domain

// Token is an opaque random string with no uniqueness or expiry guarantees.
// Its characters come from the standard base64 alphabet, so it may contain '+', '/' and '='.
type Token struct {
	Value string
}

// Len returns the number of characters in the token.
func (t *Token) Len() int {
	return len(t.Value)
}

// Checksum is the sum of the Unicode code points of a string. It is a simple integrity
// indicator, not a cryptographic guarantee.
type Checksum struct {
	Value int64
}
