// Package domain defines the outcome of the identity resolution flow. A
// submitted face either maps to a registered account or gets a freshly
// allocated temporary identity for later registration.
package domain

import (
	identityBackend "github.com/pointward/gateway/internal/backend/identity"
)

// Resolution is the result of resolving one face image to an identity.
type Resolution struct {
	// AssumedNew reports that the subject has no registered account: either
	// the face was unknown, or it matched an identity with no account behind
	// it yet.
	AssumedNew bool
	// SubjectID is the identity the face now maps to. For a new face this is
	// the freshly allocated temporary identity.
	SubjectID string
	// Profile is the register-safe account view, set only when AssumedNew is
	// false.
	Profile *identityBackend.PublicProfile
}
