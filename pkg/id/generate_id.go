package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewRequestID generates a public borrow-request identifier for callers
// that did not supply one.
func NewRequestID() string {
	return "REQ-" + suffix8()
}

// NewLoanRef derives a loan-record identifier from the source request's
// public id. Collision-resistant, not meant to be human-meaningful.
func NewLoanRef(requestID string) string {
	return requestID + "-" + suffix8()
}

func suffix8() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}
