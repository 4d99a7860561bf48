package usecase

import (
	"context"
	"io"
	"log/slog"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
	auditUseCase "github.com/pointward/gateway/internal/audit/usecase"
	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/metrics"
	recognitionDomain "github.com/pointward/gateway/internal/recognition/domain"
)

// recognitionUseCase implements RecognitionUseCase.
type recognitionUseCase struct {
	recognitionBackend RecognitionBackend
	identityBackend    IdentityBackend
	recorder           auditUseCase.Recorder
	recognitionMetrics metrics.RecognitionMetrics
	logger             *slog.Logger
}

// Resolve runs the identity resolution flow:
//
//  1. Submit the image to the recognition backend.
//  2. Unknown face: allocate a temporary identity and rebind the recognition
//     backend's placeholder id to it. The caller gets the temporary id for a
//     later registration.
//  3. Known face: fetch the account's public profile. A missing account means
//     the identity was allocated but never registered, so the subject is
//     treated as new under its existing id.
//
// Each step's backend call is its commit point; a failure aborts the flow
// with no rollback of earlier steps. An orphaned temporary identity from an
// aborted run is harmless and reaped by the identity backend.
func (r *recognitionUseCase) Resolve(
	ctx context.Context,
	filename string,
	image io.Reader,
) (*recognitionDomain.Resolution, error) {
	result, err := r.recognitionBackend.Recognize(ctx, filename, image)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to recognize face")
	}

	r.recognitionMetrics.RecordRecognition(ctx, string(auditDomain.RecognitionEvent))
	r.recorder.Record(ctx, auditDomain.RecognitionEvent)

	if result.IsNew {
		subjectID, err := r.identityBackend.CreateTemporaryIdentity(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to allocate temporary identity")
		}

		if err := r.recognitionBackend.ReassignID(ctx, result.SubjectID, subjectID); err != nil {
			return nil, apperrors.Wrap(err, "failed to reassign recognition id")
		}

		r.logger.Info("resolved new face",
			slog.String("subject_id", subjectID))

		return &recognitionDomain.Resolution{AssumedNew: true, SubjectID: subjectID}, nil
	}

	profile, err := r.identityBackend.GetPublicProfile(ctx, result.SubjectID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			// Identity known to the recognition backend but never registered.
			return &recognitionDomain.Resolution{AssumedNew: true, SubjectID: result.SubjectID}, nil
		}
		return nil, apperrors.Wrap(err, "failed to fetch subject profile")
	}

	return &recognitionDomain.Resolution{
		AssumedNew: false,
		SubjectID:  result.SubjectID,
		Profile:    profile,
	}, nil
}

// Merge folds oldID into newID on the recognition backend.
func (r *recognitionUseCase) Merge(ctx context.Context, oldID, newID string) (string, error) {
	result, err := r.recognitionBackend.MergeIDs(ctx, oldID, newID)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to merge identities")
	}

	r.recognitionMetrics.RecordRecognition(ctx, string(auditDomain.MergeEvent))
	r.recorder.Record(ctx, auditDomain.MergeEvent)

	r.logger.Info("merged identities",
		slog.String("old_id", oldID),
		slog.String("new_id", result.NewID))

	return result.NewID, nil
}

// ReportConfusion folds the misattributed oldID into newID on the recognition
// backend.
func (r *recognitionUseCase) ReportConfusion(ctx context.Context, oldID, newID string) (string, error) {
	result, err := r.recognitionBackend.MergeIDs(ctx, oldID, newID)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to fold confused identity")
	}

	r.recognitionMetrics.RecordRecognition(ctx, string(auditDomain.ConfusionEvent))
	r.recorder.Record(ctx, auditDomain.ConfusionEvent)

	r.logger.Info("folded confused identity",
		slog.String("old_id", oldID),
		slog.String("new_id", result.NewID))

	return result.NewID, nil
}

// NewRecognitionUseCase creates a new RecognitionUseCase with the provided
// dependencies.
func NewRecognitionUseCase(
	recognitionBackend RecognitionBackend,
	identityBackend IdentityBackend,
	recorder auditUseCase.Recorder,
	recognitionMetrics metrics.RecognitionMetrics,
	logger *slog.Logger,
) RecognitionUseCase {
	return &recognitionUseCase{
		recognitionBackend: recognitionBackend,
		identityBackend:    identityBackend,
		recorder:           recorder,
		recognitionMetrics: recognitionMetrics,
		logger:             logger,
	}
}
