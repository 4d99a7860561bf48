// Package recognition is the typed client for the face-recognition backend.
// The backend keys faces by subject uid and supports reassigning and merging
// uids when an identity turns out to be new, duplicated or misattributed.
package recognition

import (
	"context"
	"io"

	"github.com/pointward/gateway/internal/backend"
)

// Result is the backend's answer for one submitted image. IsNew reports that
// the face matched no known subject; SubjectID is then a backend-local
// placeholder that must be reassigned to a real identity before use.
type Result struct {
	IsNew     bool   `json:"new"`
	SubjectID string `json:"uid"`
}

// MergeResult reports the surviving subject id after a merge.
type MergeResult struct {
	NewID string `json:"uid"`
}

// Client calls the face-recognition backend.
type Client struct {
	caller *backend.Caller
}

// NewClient creates a Client on top of the shared caller.
func NewClient(caller *backend.Caller) *Client {
	return &Client{caller: caller}
}

// Recognize submits an image and returns the backend's match decision.
func (c *Client) Recognize(ctx context.Context, filename string, image io.Reader) (*Result, error) {
	result := &Result{}
	err := c.caller.PostMultipart(ctx, "/frontend/recognise", "file", filename, image, result, nil)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReassignID rebinds the faces stored under oldID to newID. Used right after
// a temporary identity is allocated for a newly seen face.
func (c *Client) ReassignID(ctx context.Context, oldID, newID string) error {
	body := map[string]string{"old_uid": oldID, "new_uid": newID}
	return c.caller.PostJSON(ctx, "/frontend/assign_uid", body, nil, nil)
}

// MergeIDs folds the faces stored under oldID into newID and retires oldID.
func (c *Client) MergeIDs(ctx context.Context, oldID, newID string) (*MergeResult, error) {
	body := map[string]string{"old_uid": oldID, "new_uid": newID}
	result := &MergeResult{}
	if err := c.caller.PostJSON(ctx, "/frontend/merge", body, result, nil); err != nil {
		return nil, err
	}
	return result, nil
}
