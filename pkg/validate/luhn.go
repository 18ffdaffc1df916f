package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a digit string with a valid Luhn check digit.
// Tracing IDs carry one so that mistyped public lookups fail fast.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewTracingID generates a random Luhn-valid tracing ID of the given length.
func NewTracingID(size int) (string, error) {
	return goluhn.Generate(size), nil
}
