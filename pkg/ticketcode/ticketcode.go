// Package ticketcode generates and validates the short access codes printed
// on confirmed vouchers.
package ticketcode

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Codes are 8 characters drawn from the uppercase alphanumeric charset. The
// collision probability per draw is ~36^-8; callers still re-draw on collision
// against existing codes.
const (
	Length  = 8
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// New draws a random ticket code.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}

	return string(buf), nil
}

// Valid reports whether a string is a well-formed ticket code.
func Valid(code string) bool {
	return codePattern.MatchString(code)
}
