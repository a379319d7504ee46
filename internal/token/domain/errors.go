package domain

import (
	"github.com/allisson/tokengen/internal/errors"
)

// ErrRandomSource indicates the secure random source failed to produce enough bytes.
var ErrRandomSource = errors.New("secure random source failure")
