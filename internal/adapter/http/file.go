package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleGetFile proxies a stored payload. Keys are immutable, so responses
// are cacheable forever.
func (h *Handler) handleGetFile(w http.ResponseWriter, r *http.Request) {
	obj, err := h.workflow.OpenFile(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	defer obj.Body.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, obj.Body); err != nil {
		h.logger.WarnContext(r.Context(), "file stream interrupted",
			slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}
