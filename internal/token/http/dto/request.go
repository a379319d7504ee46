// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
	customValidation "github.com/allisson/tokengen/internal/validation"
)

// GenerateTokenRequest contains the parameters for generating a token.
//
// Length is nil when the field is absent. A negative Length counts back from the end of
// the encoded token. An explicit "length": null sets Whole and selects the whole token.
type GenerateTokenRequest struct {
	Length *int `json:"length,omitempty"`
	Whole  bool `json:"-"`
}

// UnmarshalJSON decodes the request body. Besides JSON numbers, length accepts a string
// holding a base 10 integer.
func (r *GenerateTokenRequest) UnmarshalJSON(data []byte) error {
	var body struct {
		Length json.RawMessage `json:"length"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	r.Length, r.Whole = nil, false

	raw := bytes.TrimSpace(body.Length)
	switch {
	case len(raw) == 0:
		return nil
	case bytes.Equal(raw, []byte("null")):
		r.Whole = true
		return nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("length: %q is not an integer", s)
		}
		r.Length = &n
	default:
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("length: %w", err)
		}
		r.Length = &n
	}

	return nil
}

// RequestedLength returns the length to hand to the use case: nil for the default,
// MaxEncodedLength when the whole token was asked for.
func (r *GenerateTokenRequest) RequestedLength() *int {
	if r.Whole {
		n := tokenDomain.MaxEncodedLength
		return &n
	}
	return r.Length
}

// ChecksumRequest contains the string whose checksum is computed.
// Token is a pointer so that an absent field can be told apart from "".
type ChecksumRequest struct {
	Token *string `json:"token"`
}

// Validate checks if the checksum request is valid.
func (r *ChecksumRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			customValidation.Required,
		),
	)
}
