// Package util holds small helpers shared across layers.
package util

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// GenerateSecureToken returns a URL-safe random token built from byteLen
// bytes of cryptographically secure randomness. The raw token is mailed to
// the user; only its digest is persisted.
func GenerateSecureToken(byteLen int) (string, error) {
	if byteLen <= 0 {
		byteLen = 32
	}

	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
