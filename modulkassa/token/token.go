// Package token derives and checks the verification token carried by the
// FN result callback. The token binds a callback to a document id without
// the shared secret ever leaving the module.
package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

type Service interface {
	Create(documentID string) string
	Validate(token, documentID string) bool
}

type service struct {
	secret string
}

func New(secret string) Service {
	return &service{secret: secret}
}

// Create returns the hex SHA-256 of "{secret}${documentID}". Stable for
// identical inputs, infeasible to forge without the secret.
func (s *service) Create(documentID string) string {
	sum := sha256.Sum256([]byte(s.secret + "$" + documentID))
	return hex.EncodeToString(sum[:])
}

// Validate compares in constant time so callers leak no timing signal to
// whoever probes the callback endpoint.
func (s *service) Validate(token, documentID string) bool {
	expected := s.Create(documentID)
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(expected)) == 1
}
