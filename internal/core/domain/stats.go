package domain

// LibraryStats summarises the creative library for the overview page.
type LibraryStats struct {
	Creatives         int                    `json:"creatives"`
	Assigned          int                    `json:"assigned"`
	Unassigned        int                    `json:"unassigned"`
	Videos            int                    `json:"videos"`
	Images            int                    `json:"images"`
	TotalBytes        int64                  `json:"totalBytes"`
	ByApprovalStatus  map[ApprovalStatus]int `json:"byApprovalStatus"`
	Campaigns         int                    `json:"campaigns"`
	ByCampaignStatus  map[CampaignStatus]int `json:"byCampaignStatus"`
	EmptyCampaigns    int                    `json:"emptyCampaigns"`
	OrphanAssignments int                    `json:"orphanAssignments"`
}
