package httpadapter

import (
	"net/http"
	"time"

	"github.com/ardenpalme/app/internal/adapter/usecase"
)

// handleStatsOverview returns aggregated library statistics. Optional
// `from` and `to` (RFC3339 timestamps) restrict the creatives counted by
// submission date; campaigns are always counted in full. Invalid
// parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q        = r.URL.Query()
		from, to *time.Time
	)

	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid 'from' timestamp", nil)
			return
		}
		from = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid 'to' timestamp", nil)
			return
		}
		to = &t
	}

	creatives, err := h.assets.ListAll(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	campaigns, err := h.campaigns.ListComplete(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildLibraryStats(creatives, campaigns, from, to))
}
