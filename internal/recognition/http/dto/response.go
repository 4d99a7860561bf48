package dto

import (
	recognitionDomain "github.com/pointward/gateway/internal/recognition/domain"
)

// ProfileResponse is the register-safe account view returned for a known face.
type ProfileResponse struct {
	UID       string `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ResolveResponse is the outcome of one face resolution.
type ResolveResponse struct {
	AssumedNew bool             `json:"assumed_new"`
	UID        string           `json:"uid"`
	User       *ProfileResponse `json:"user,omitempty"`
}

// MergeResponse reports the surviving identity after a merge or confusion
// report.
type MergeResponse struct {
	UID string `json:"uid"`
}

// MapResolutionToResponse converts a domain Resolution to its response form.
func MapResolutionToResponse(resolution *recognitionDomain.Resolution) ResolveResponse {
	response := ResolveResponse{
		AssumedNew: resolution.AssumedNew,
		UID:        resolution.SubjectID,
	}
	if resolution.Profile != nil {
		response.User = &ProfileResponse{
			UID:       resolution.Profile.UID,
			FirstName: resolution.Profile.FirstName,
			LastName:  resolution.Profile.LastName,
		}
	}
	return response
}
