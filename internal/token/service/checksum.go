package service

type codePointChecksum struct{}

// NewCodePointChecksum creates a checksum calculator that adds up Unicode code points.
func NewCodePointChecksum() ChecksumCalculator {
	return &codePointChecksum{}
}

// Calculate returns the sum of the code points of every rune in value. No normalization
// is applied, and invalid UTF-8 bytes count as U+FFFD.
func (c *codePointChecksum) Calculate(value string) int64 {
	var sum int64
	for _, r := range value {
		sum += int64(r)
	}
	return sum
}
