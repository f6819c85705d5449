package domain

import "time"

// CampaignStatus is driven by an external approval process.
type CampaignStatus string

const (
	CampaignDraft              CampaignStatus = "draft"
	CampaignWaitingForApproval CampaignStatus = "WAITING_FOR_APPROVAL"
	CampaignApproved           CampaignStatus = "APPROVED"
	CampaignRejected           CampaignStatus = "REJECTED"
)

// Campaign represents a named, dated grouping of creatives.
type Campaign struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Notes          *string        `json:"notes"`
	OrgID          string         `json:"orgId"`
	UserID         string         `json:"userId"`
	Status         CampaignStatus `json:"status"`
	SubmittedBy    *string        `json:"submittedBy"`
	SubmissionDate *time.Time     `json:"submissionDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Summary returns the projection embedded into creative views.
func (c *Campaign) Summary() *CampaignSummary {
	return &CampaignSummary{ID: c.ID, Name: c.Name, Status: c.Status}
}

// CampaignForm is the input accepted when creating a campaign.
type CampaignForm struct {
	Name           string     `json:"name" validate:"required,max=255"`
	StartDate      time.Time  `json:"startDate" validate:"required"`
	EndDate        time.Time  `json:"endDate" validate:"required"`
	Notes          *string    `json:"notes" validate:"omitempty,max=4000"`
	UserID         string     `json:"userId" validate:"max=64"`
	OrgID          string     `json:"orgId" validate:"max=64"`
	SubmittedBy    *string    `json:"submittedBy" validate:"omitempty,max=64"`
	SubmissionDate *time.Time `json:"submissionDate"`
}

// CampaignOption is the minimal projection used by selection controls.
type CampaignOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CampaignWithCreatives is a campaign joined with its current creatives.
type CampaignWithCreatives struct {
	Campaign
	Creatives []CreativeWithCampaign `json:"creatives"`
}
