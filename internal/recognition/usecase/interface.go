// Package usecase implements the identity resolution flow and the merge and
// confusion sub-flows on top of the recognition and identity backends.
package usecase

import (
	"context"
	"io"

	identityBackend "github.com/pointward/gateway/internal/backend/identity"
	recognitionBackend "github.com/pointward/gateway/internal/backend/recognition"
	recognitionDomain "github.com/pointward/gateway/internal/recognition/domain"
)

// RecognitionBackend defines the recognition backend operations the flow uses.
type RecognitionBackend interface {
	Recognize(ctx context.Context, filename string, image io.Reader) (*recognitionBackend.Result, error)
	ReassignID(ctx context.Context, oldID, newID string) error
	MergeIDs(ctx context.Context, oldID, newID string) (*recognitionBackend.MergeResult, error)
}

// IdentityBackend defines the identity backend operations the flow uses.
type IdentityBackend interface {
	CreateTemporaryIdentity(ctx context.Context) (string, error)
	GetPublicProfile(ctx context.Context, uid string) (*identityBackend.PublicProfile, error)
}

// RecognitionUseCase defines the identity resolution business logic.
type RecognitionUseCase interface {
	// Resolve maps one face image to an identity, allocating a temporary
	// identity when the face is new or has no account behind it.
	Resolve(ctx context.Context, filename string, image io.Reader) (*recognitionDomain.Resolution, error)
	// Merge folds a duplicate identity (oldID) into the surviving one (newID)
	// after a known customer was classified as new. Returns the surviving id.
	Merge(ctx context.Context, oldID, newID string) (string, error)
	// ReportConfusion folds a misattributed identity (oldID) into the correct
	// one (newID) after one customer was confused with another. Returns the
	// surviving id.
	ReportConfusion(ctx context.Context, oldID, newID string) (string, error)
}
