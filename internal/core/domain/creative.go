package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// ApprovalStatus is the review state of a creative.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Valid reports whether s is one of the known approval states.
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Creative represents a managed media asset (image or video). FileURL is
// the object storage key of its payload; CampaignID is nil while the
// creative sits in the unassigned pool.
type Creative struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Notes          *string        `json:"notes"`
	Tags           []string       `json:"tags"`
	FileURL        string         `json:"fileUrl"`
	// ThumbnailURL is the storage key of the derived video thumbnail.
	ThumbnailURL   *string        `json:"thumbnailUrl,omitempty"`
	FileType       string         `json:"fileType"`
	FileSize       int64          `json:"fileSize"`
	Width          *int           `json:"width,omitempty"`
	Height         *int           `json:"height,omitempty"`
	Duration       *float64       `json:"duration,omitempty"` // seconds, video only
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ProofOfPlay    bool           `json:"proofOfPlay"`
	OrgID          string         `json:"orgId,omitempty"`
	SubmittedBy    string         `json:"submittedBy"`
	SubmissionDate time.Time      `json:"submissionDate"`
	CampaignID     *string        `json:"campaignId"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// IsVideo reports whether the payload is a video and therefore has a
// derived thumbnail next to it in storage.
func (c *Creative) IsVideo() bool {
	return IsVideoType(c.FileType)
}

// IsVideoType reports whether the MIME type denotes a video.
func IsVideoType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "video/")
}

// CampaignSummary is the slice of a campaign embedded into creative views.
type CampaignSummary struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status CampaignStatus `json:"status"`
}

// CreativeWithCampaign is a creative joined with the summary of the
// campaign it belongs to, or nil when unassigned.
type CreativeWithCampaign struct {
	Creative
	Campaign *CampaignSummary `json:"campaign"`
}

// CreativeForm is the input accepted when registering a creative whose
// payload is already stored under FileURL.
type CreativeForm struct {
	ID             string    `json:"id" validate:"omitempty,max=64"`
	Name           string    `json:"name" validate:"required,max=255"`
	Notes          *string   `json:"notes" validate:"omitempty,max=4000"`
	Tags           []string  `json:"tags" validate:"omitempty,max=64,dive,max=64"`
	ProofOfPlay    bool      `json:"proofOfPlay"`
	FileURL        string    `json:"fileUrl" validate:"required,max=512"`
	ThumbnailURL   *string   `json:"thumbnailUrl" validate:"omitempty,max=512"`
	FileType       string    `json:"fileType" validate:"required,max=255"`
	FileSize       int64     `json:"fileSize" validate:"required,gt=0"`
	Width          *int      `json:"width" validate:"omitempty,gte=0"`
	Height         *int      `json:"height" validate:"omitempty,gte=0"`
	Duration       *float64  `json:"duration" validate:"omitempty,gte=0"`
	OrgID          string    `json:"orgId" validate:"max=64"`
	SubmittedBy    string    `json:"submittedBy" validate:"max=64"`
	SubmissionDate time.Time `json:"submissionDate"`
}

// CreativeEdit carries the client-editable fields of a creative. Name is
// always written. Tags and Notes are partial: a nil Tags keeps the stored
// tags, and Notes is only written when NotesSet is true, so a nil Notes
// with NotesSet clears them.
type CreativeEdit struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=255"`
	Notes    *string   `json:"notes" validate:"omitempty,max=4000"`
	NotesSet bool      `json:"-"`
	Tags     *[]string `json:"tags" validate:"omitempty,max=64,dive,max=64"`
}

// UnmarshalJSON sets NotesSet when the "notes" key is present, including
// an explicit null.
func (e *CreativeEdit) UnmarshalJSON(b []byte) error {
	type plain CreativeEdit
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	if err := json.Unmarshal(b, (*plain)(e)); err != nil {
		return err
	}
	_, e.NotesSet = keys["notes"]
	return nil
}

// CreativeFilter selects creatives in FindMany. The zero value matches
// every creative.
type CreativeFilter struct {
	Unassigned bool
	CampaignID *string
}

// MediaMetadata is derived locally from an uploaded payload.
type MediaMetadata struct {
	Width    *int
	Height   *int
	Duration *float64
}
