package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ardenpalme/app/internal/adapter/usecase"
	"github.com/ardenpalme/app/internal/core/domain"
)

// campaignRequest mirrors domain.CampaignForm with dates as strings so both
// RFC3339 timestamps and plain YYYY-MM-DD dates are accepted.
type campaignRequest struct {
	Name           string  `json:"name"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Notes          *string `json:"notes"`
	UserID         string  `json:"userId"`
	OrgID          string  `json:"orgId"`
	SubmittedBy    *string `json:"submittedBy"`
	SubmissionDate *string `json:"submissionDate"`
}

func (c campaignRequest) form() (domain.CampaignForm, error) {
	form := domain.CampaignForm{
		Name:        c.Name,
		Notes:       c.Notes,
		UserID:      c.UserID,
		OrgID:       c.OrgID,
		SubmittedBy: c.SubmittedBy,
	}
	bad := map[string]string{}
	var err error
	if form.StartDate, err = parseDate(c.StartDate); err != nil {
		bad["startDate"] = "must be an RFC3339 timestamp or YYYY-MM-DD"
	}
	if form.EndDate, err = parseDate(c.EndDate); err != nil {
		bad["endDate"] = "must be an RFC3339 timestamp or YYYY-MM-DD"
	}
	if c.SubmissionDate != nil {
		t, err := parseDate(*c.SubmissionDate)
		if err != nil {
			bad["submissionDate"] = "must be an RFC3339 timestamp or YYYY-MM-DD"
		} else if !t.IsZero() {
			form.SubmissionDate = &t
		}
	}
	if len(bad) > 0 {
		return form, &domain.ValidationError{Fields: bad}
	}
	return form, nil
}

// parseDate returns the zero time for an empty string and leaves the
// required check to the service.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListComplete(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleCampaignOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.campaigns.ListForSelect(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// handleCampaignsWithCreatives joins every campaign with its creatives in
// memory from two list reads.
func (h *Handler) handleCampaignsWithCreatives(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListComplete(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	creatives, err := h.assets.ListAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildCampaignsWithCreatives(campaigns, creatives))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	creatives, err := h.assets.ListByCampaign(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, domain.CampaignWithCreatives{Campaign: *campaign, Creatives: creatives})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	form, err := req.form()
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	campaign, err := h.campaigns.Add(r.Context(), form)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// handleDeleteCampaign unassigns every creative of the campaign and then
// deletes it.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	report, err := h.workflow.DeleteCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, report)
		return
	}
	writeJSON(w, http.StatusOK, newReportResponse(report))
}
