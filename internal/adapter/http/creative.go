package httpadapter

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

// multipartMemory is the part of an upload kept in memory before the
// multipart reader spills to disk.
const multipartMemory = 32 << 20

type uploadResponse struct {
	Creative *domain.CreativeWithCampaign `json:"creative"`
	Report   *domain.WorkflowReport       `json:"report"`
}

type reportResponse struct {
	Report   *domain.WorkflowReport `json:"report"`
	Warnings []domain.StepResult    `json:"warnings"`
}

func newReportResponse(report *domain.WorkflowReport) reportResponse {
	warnings := report.Warnings()
	if warnings == nil {
		warnings = []domain.StepResult{}
	}
	return reportResponse{Report: report, Warnings: warnings}
}

func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	var (
		creatives []domain.CreativeWithCampaign
		err       error
	)
	if cid := r.URL.Query().Get("campaignId"); cid != "" {
		creatives, err = h.assets.ListByCampaign(r.Context(), cid)
	} else {
		creatives, err = h.assets.ListAll(r.Context())
	}
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, creatives)
}

func (h *Handler) handleListUnassigned(w http.ResponseWriter, r *http.Request) {
	creatives, err := h.assets.ListUnassigned(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, creatives)
}

func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	creative, err := h.assets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, creative)
}

// handleCreateCreative registers a creative whose payload is already in
// object storage under fileUrl.
func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var form domain.CreativeForm
	if !decodeJSON(w, r, &form) {
		return
	}
	creative, err := h.assets.Add(r.Context(), form)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusCreated, creative)
}

func (h *Handler) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	var edit domain.CreativeEdit
	if !decodeJSON(w, r, &edit) {
		return
	}
	edit.ID = chi.URLParam(r, "id")
	creative, err := h.assets.Update(r.Context(), edit)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, creative)
}

func (h *Handler) handleReviewCreative(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ApprovalStatus domain.ApprovalStatus `json:"approvalStatus"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	creative, err := h.assets.Review(r.Context(), chi.URLParam(r, "id"), body.ApprovalStatus)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, creative)
}

func (h *Handler) handleAssignCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID string `json:"campaignId"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.assets.AssignCampaign(r.Context(), chi.URLParam(r, "id"), body.CampaignID); err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnassignCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.assets.UnassignCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteCreative removes the record, then its payload and thumbnail.
// Storage cleanup failures come back as warnings with status 200.
func (h *Handler) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	report, err := h.workflow.DeleteAsset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, report)
		return
	}
	writeJSON(w, http.StatusOK, newReportResponse(report))
}

// handleUploadCreative accepts a multipart form with a "file" part plus
// optional name, notes, tags, proofOfPlay, orgId and submittedBy fields.
// Tags may repeat or be comma separated.
func (h *Handler) handleUploadCreative(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.MaxUploadBytes
	if limit <= 0 {
		limit = 200 << 20
	}
	// headroom for the non-file fields and multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds size limit",
				map[string]any{"limit": limit})
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", "invalid multipart form", map[string]any{"error": err.Error()})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeServiceError(w, r, domain.NewValidationError("file", "is required"), nil)
		return
	}
	defer file.Close()
	if header.Size > limit {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds size limit",
			map[string]any{"limit": limit})
		return
	}

	path, sniffed, size, err := spoolUpload(file, header.Filename)
	if err != nil {
		h.writeServiceError(w, r, err, nil)
		return
	}
	defer os.Remove(path)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = sniffed
	}

	req := port.UploadRequest{
		Path:             path,
		OriginalFilename: header.Filename,
		ContentType:      contentType,
		Size:             size,
		Name:             r.FormValue("name"),
		Tags:             formTags(r.MultipartForm.Value["tags"]),
		OrgID:            r.FormValue("orgId"),
		SubmittedBy:      r.FormValue("submittedBy"),
	}
	if notes := strings.TrimSpace(r.FormValue("notes")); notes != "" {
		req.Notes = &notes
	}
	if raw := r.FormValue("proofOfPlay"); raw != "" {
		req.ProofOfPlay, err = strconv.ParseBool(raw)
		if err != nil {
			h.writeServiceError(w, r, domain.NewValidationError("proofOfPlay", "must be a boolean"), nil)
			return
		}
	}

	creative, report, err := h.workflow.UploadAsset(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err, report)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Creative: creative, Report: report})
}

// spoolUpload copies the part to a temporary file so the workflow can read
// it more than once. It returns the sniffed content type, empty when the
// first bytes are not recognised.
func spoolUpload(src multipart.File, filename string) (path, contentType string, size int64, err error) {
	tmp, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", "", 0, err
	}
	defer func() {
		if cerr := tmp.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", 0, err
	}
	head = head[:n]
	if n > 0 {
		if detected := http.DetectContentType(head); detected != "application/octet-stream" {
			contentType = detected
		}
	}
	if _, err = tmp.Write(head); err != nil {
		return "", "", 0, err
	}
	rest, err := io.Copy(tmp, src)
	if err != nil {
		return "", "", 0, err
	}
	return tmp.Name(), contentType, int64(n) + rest, nil
}

func formTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
