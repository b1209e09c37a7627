// Package token generates the short public codes that identify entities
// outside the database, independent of storage-assigned primary keys.
package token

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the 62-symbol character set codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultLength keeps codes short enough to read aloud. Collisions are
// negligible at this length but the store still enforces uniqueness.
const DefaultLength = 8

// MaxAttempts bounds the store's regenerate-and-retry loop on collision.
const MaxAttempts = 5

var pattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

func New() string {
	return NewLen(DefaultLength)
}

func NewLen(n int) string {
	return gonanoid.MustGenerate(Alphabet, n)
}

// Valid reports whether s looks like a default-length code.
func Valid(s string) bool {
	return len(s) == DefaultLength && pattern.MatchString(s)
}
