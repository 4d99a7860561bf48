// Package dto provides data transfer objects for recognition HTTP request and
// response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/pointward/gateway/internal/validation"
)

// MergeRequest contains the identity pair for a merge or confusion report.
// OldUID is folded into NewUID.
type MergeRequest struct {
	OldUID string `json:"old_uid" binding:"required"`
	NewUID string `json:"new_uid" binding:"required"`
}

// Validate checks if the merge request is valid.
func (r *MergeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OldUID, validation.Required, customValidation.UUIDString),
		validation.Field(&r.NewUID, validation.Required, customValidation.UUIDString),
	)
}
