// Package service implements the capability-token codec.
//
// Tokens are three-part HS256-signed strings (header.payload.signature). The
// codec separates unsigned peeking from full verification: the access guard
// rejects absent or garbled tokens and wrong claimed tiers cheaply before
// paying for the signature comparison.
package service

import (
	authDomain "github.com/pointward/gateway/internal/auth/domain"
)

// TokenCodec issues and verifies capability tokens signed with the
// process-wide shared secret.
type TokenCodec interface {
	// Issue serializes and signs a claim set for the given principal.
	// The extra map carries optional extension claims (may be nil).
	// The token expires after the codec's configured lifetime; there is no
	// server-side revocation.
	Issue(entityID string, level authDomain.AccessLevel, extra map[string]string) (string, error)

	// Verify checks the token signature and expiry and returns the verified
	// claims. Any failure (tampered signature, malformed segments, expired
	// token, missing entity id) wraps ErrForbidden; Verify never panics on
	// malformed input.
	Verify(token string) (*authDomain.Claims, error)

	// Peek decodes the payload segment without verifying the signature. It
	// reports only what the caller is *claiming*; callers must still Verify
	// before trusting the result. Returns false on any malformed input.
	Peek(token string) (*authDomain.Claims, bool)
}
