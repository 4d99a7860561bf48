// Package http provides HTTP handlers for the face recognition flows.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pointward/gateway/internal/httputil"
	"github.com/pointward/gateway/internal/recognition/http/dto"
	recognitionUseCase "github.com/pointward/gateway/internal/recognition/usecase"
	customValidation "github.com/pointward/gateway/internal/validation"
)

// maxImageSize caps the accepted face image at 8 MiB.
const maxImageSize = 8 << 20

// RecognitionHandler handles HTTP requests for face resolution, identity
// merging and confusion reports.
type RecognitionHandler struct {
	recognitionUseCase recognitionUseCase.RecognitionUseCase
	logger             *slog.Logger
}

// NewRecognitionHandler creates a new recognition handler with required
// dependencies.
func NewRecognitionHandler(
	useCase recognitionUseCase.RecognitionUseCase,
	logger *slog.Logger,
) *RecognitionHandler {
	return &RecognitionHandler{
		recognitionUseCase: useCase,
		logger:             logger,
	}
}

// ResolveHandler resolves a face image to an identity.
// POST /v1/recognitions - multipart form with a "file" field. Unauthenticated:
// it runs before the customer has any token to present.
// Returns 200 OK with the resolution outcome.
func (h *RecognitionHandler) ResolveHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("missing file field: %w", err),
			h.logger,
		)
		return
	}
	if fileHeader.Size > maxImageSize {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("file exceeds %d bytes", maxImageSize),
			h.logger,
		)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("unreadable file: %w", err), h.logger)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	resolution, err := h.recognitionUseCase.Resolve(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResolutionToResponse(resolution))
}

// MergeHandler folds a duplicate identity into the surviving one.
// POST /v1/recognitions/merge - Requires CASHIER tier.
// Returns 200 OK with the surviving identity.
func (h *RecognitionHandler) MergeHandler(c *gin.Context) {
	req, ok := h.bindMergeRequest(c)
	if !ok {
		return
	}

	newID, err := h.recognitionUseCase.Merge(c.Request.Context(), req.OldUID, req.NewUID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MergeResponse{UID: newID})
}

// ConfusionHandler folds a misattributed identity into the correct one.
// POST /v1/recognitions/confusion - Requires CASHIER tier.
// Returns 200 OK with the surviving identity.
func (h *RecognitionHandler) ConfusionHandler(c *gin.Context) {
	req, ok := h.bindMergeRequest(c)
	if !ok {
		return
	}

	newID, err := h.recognitionUseCase.ReportConfusion(c.Request.Context(), req.OldUID, req.NewUID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MergeResponse{UID: newID})
}

// bindMergeRequest parses and validates the shared merge/confusion payload.
func (h *RecognitionHandler) bindMergeRequest(c *gin.Context) (*dto.MergeRequest, bool) {
	var req dto.MergeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	return &req, true
}
