package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ardenpalme/app/internal/config/configs"
	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
	"github.com/ardenpalme/app/internal/core/port/mocks"
)

type fixture struct {
	assets    *mocks.MockAssetService
	campaigns *mocks.MockCampaignService
	workflow  *mocks.MockWorkflow
	handler   *Handler
}

func newFixture(t *testing.T, checks ...ReadinessCheck) *fixture {
	t.Helper()
	f := &fixture{
		assets:    mocks.NewMockAssetService(t),
		campaigns: mocks.NewMockCampaignService(t),
		workflow:  mocks.NewMockWorkflow(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := configs.HTTP{MaxUploadBytes: 1 << 20, RequestTimeout: 5 * time.Second}
	f.handler = NewHandler(f.assets, f.campaigns, f.workflow, cfg, logger, checks...)
	return f
}

func (f *fixture) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	f.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetCreative(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().Get(mock.Anything, "c1").Return(&domain.CreativeWithCampaign{
		Creative: domain.Creative{ID: "c1", Name: "Banner", Tags: []string{}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/creatives/c1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.CreativeWithCampaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Banner", got.Name)
	assert.Nil(t, got.Campaign)
}

func TestGetCreative_NotFound(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/v1/creatives/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestListUnassignedRouteIsNotAnID(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().ListUnassigned(mock.Anything).Return([]domain.CreativeWithCampaign{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/creatives/unassigned", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListCreatives_ByCampaign(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().ListByCampaign(mock.Anything, "k1").Return([]domain.CreativeWithCampaign{}, nil)

	rec := f.do(http.MethodGet, "/api/v1/creatives?campaignId=k1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCreative_ValidationFields(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(e domain.CreativeEdit) bool { return e.ID == "c1" && e.Name == "" })).
		Return(nil, domain.NewValidationError("name", "is required"))

	rec := f.do(http.MethodPatch, "/api/v1/creatives/c1", strings.NewReader(`{"name":""}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "validation_failed", body.Code)
	assert.Equal(t, map[string]any{"name": "is required"}, body.Details["fields"])
}

func TestUpdateCreative_PartialBody(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(e domain.CreativeEdit) bool {
			return e.ID == "c1" && e.Name == "renamed" && e.Tags == nil && !e.NotesSet
		})).
		Return(&domain.CreativeWithCampaign{Creative: domain.Creative{ID: "c1", Name: "renamed"}}, nil)

	rec := f.do(http.MethodPatch, "/api/v1/creatives/c1", strings.NewReader(`{"name":"renamed"}`), "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCreative_ExplicitClear(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(e domain.CreativeEdit) bool {
			return e.Tags != nil && len(*e.Tags) == 0 && e.NotesSet && e.Notes == nil
		})).
		Return(&domain.CreativeWithCampaign{Creative: domain.Creative{ID: "c1"}}, nil)

	rec := f.do(http.MethodPatch, "/api/v1/creatives/c1",
		strings.NewReader(`{"name":"x","notes":null,"tags":[]}`), "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCreative_BadJSON(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPatch, "/api/v1/creatives/c1", strings.NewReader(`{`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestReviewCreative(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().Review(mock.Anything, "c1", domain.ApprovalApproved).Return(&domain.CreativeWithCampaign{
		Creative: domain.Creative{ID: "c1", ApprovalStatus: domain.ApprovalApproved},
	}, nil)

	rec := f.do(http.MethodPut, "/api/v1/creatives/c1/approval", strings.NewReader(`{"approvalStatus":"APPROVED"}`), "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAssignCampaign(t *testing.T) {
	t.Run("assigned", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().AssignCampaign(mock.Anything, "c1", "k1").Return(nil)

		rec := f.do(http.MethodPut, "/api/v1/creatives/c1/campaign", strings.NewReader(`{"campaignId":"k1"}`), "application/json")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().AssignCampaign(mock.Anything, "c1", "nope").Return(domain.ErrConstraint)

		rec := f.do(http.MethodPut, "/api/v1/creatives/c1/campaign", strings.NewReader(`{"campaignId":"nope"}`), "application/json")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "constraint_violation", decodeError(t, rec).Code)
	})
}

func TestUnassignCampaign(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().UnassignCampaign(mock.Anything, "c1").Return(nil)

	rec := f.do(http.MethodDelete, "/api/v1/creatives/c1/campaign", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func multipartBody(t *testing.T, fields map[string][]string, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadCreative(t *testing.T) {
	f := newFixture(t)
	payload := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	body, ct := multipartBody(t, map[string][]string{
		"name":        {"Spring banner"},
		"notes":       {"  hero slot "},
		"tags":        {"sale, spring", "hero"},
		"proofOfPlay": {"true"},
		"submittedBy": {"u1"},
	}, "banner.PNG", payload)

	var seen port.UploadRequest
	f.workflow.EXPECT().UploadAsset(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.UploadRequest) (*domain.CreativeWithCampaign, *domain.WorkflowReport, error) {
			seen = req
			data, err := os.ReadFile(req.Path)
			require.NoError(t, err)
			assert.Equal(t, payload, data)
			return &domain.CreativeWithCampaign{Creative: domain.Creative{ID: "c1", Name: req.Name}},
				&domain.WorkflowReport{Workflow: "upload_asset"}, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/creatives/upload", body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "image/png", seen.ContentType)
	assert.Equal(t, "banner.PNG", seen.OriginalFilename)
	assert.Equal(t, int64(len(payload)), seen.Size)
	assert.Equal(t, []string{"sale", "spring", "hero"}, seen.Tags)
	assert.True(t, seen.ProofOfPlay)
	require.NotNil(t, seen.Notes)
	assert.Equal(t, "hero slot", *seen.Notes)

	_, err := os.Stat(seen.Path)
	assert.True(t, os.IsNotExist(err), "spooled upload is removed")

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.Creative.ID)
	assert.Equal(t, "upload_asset", resp.Report.Workflow)
}

func TestUploadCreative_MissingFile(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, map[string][]string{"name": {"x"}}, "", nil)

	rec := f.do(http.MethodPost, "/api/v1/creatives/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"file": "is required"}, decodeError(t, rec).Details["fields"])
}

func TestUploadCreative_BadProofOfPlay(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, map[string][]string{"proofOfPlay": {"maybe"}}, "a.png", []byte("x"))

	rec := f.do(http.MethodPost, "/api/v1/creatives/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadCreative_TooLarge(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, nil, "big.bin", bytes.Repeat([]byte("a"), 3<<19))

	rec := f.do(http.MethodPost, "/api/v1/creatives/upload", body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadCreative_StorageFailure(t *testing.T) {
	f := newFixture(t)
	body, ct := multipartBody(t, nil, "a.png", []byte("\x89PNG\r\n\x1a\n"))
	report := &domain.WorkflowReport{Workflow: "upload_asset", Steps: []domain.StepResult{
		{Name: "probe", Outcome: domain.StepSucceeded},
		{Name: "store", Outcome: domain.StepFailed, Error: "boom"},
	}}
	f.workflow.EXPECT().UploadAsset(mock.Anything, mock.Anything).Return(nil, report, &domain.WorkflowError{
		Workflow: "upload_asset",
		Step:     "store",
		Err:      &domain.StorageError{Op: "put", Key: "k", Status: 503, Message: "boom"},
	})

	rec := f.do(http.MethodPost, "/api/v1/creatives/upload", body, ct)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	got := decodeError(t, rec)
	assert.Equal(t, "storage_error", got.Code)
	assert.Equal(t, "store", got.Details["step"])
	assert.Len(t, got.Details["steps"], 2)
}

func TestDeleteCreative(t *testing.T) {
	t.Run("warnings", func(t *testing.T) {
		f := newFixture(t)
		f.workflow.EXPECT().DeleteAsset(mock.Anything, "c1").Return(&domain.WorkflowReport{
			Workflow: "delete_asset",
			Steps: []domain.StepResult{
				{Name: "record", Outcome: domain.StepSucceeded},
				{Name: "object", Outcome: domain.StepFailed, Error: "down"},
			},
		}, nil)

		rec := f.do(http.MethodDelete, "/api/v1/creatives/c1", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp reportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, "object", resp.Warnings[0].Name)
	})

	t.Run("missing record", func(t *testing.T) {
		f := newFixture(t)
		f.workflow.EXPECT().DeleteAsset(mock.Anything, "nope").Return(
			&domain.WorkflowReport{Workflow: "delete_asset"},
			&domain.WorkflowError{Workflow: "delete_asset", Step: "record", Err: domain.ErrNotFound},
		)

		rec := f.do(http.MethodDelete, "/api/v1/creatives/nope", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "record", decodeError(t, rec).Details["step"])
	})
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(form domain.CampaignForm) bool {
			return form.Name == "Spring" &&
				form.StartDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) &&
				form.EndDate.Equal(time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC))
		})).
		Return(&domain.Campaign{ID: "k1", Name: "Spring", Status: domain.CampaignDraft}, nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns",
		strings.NewReader(`{"name":"Spring","startDate":"2024-06-01","endDate":"2024-06-30T12:00:00Z"}`), "application/json")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCampaign_BadDate(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/campaigns",
		strings.NewReader(`{"name":"Spring","startDate":"June 1st","endDate":"2024-06-30"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fields, ok := decodeError(t, rec).Details["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "startDate")
	assert.NotContains(t, fields, "endDate")
}

func TestGetCampaignWithCreatives(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Get(mock.Anything, "k1").Return(&domain.Campaign{ID: "k1", Name: "Spring"}, nil)
	f.assets.EXPECT().ListByCampaign(mock.Anything, "k1").Return([]domain.CreativeWithCampaign{
		{Creative: domain.Creative{ID: "c1"}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/k1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.CampaignWithCreatives
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Spring", got.Name)
	assert.Len(t, got.Creatives, 1)
}

func TestDeleteCampaign_Blocked(t *testing.T) {
	f := newFixture(t)
	f.workflow.EXPECT().DeleteCampaign(mock.Anything, "k1").Return(
		&domain.WorkflowReport{Workflow: "delete_campaign"},
		&domain.WorkflowError{Workflow: "delete_campaign", Step: "campaign", Err: domain.ErrConstraint},
	)

	rec := f.do(http.MethodDelete, "/api/v1/campaigns/k1", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCampaignsWithCreatives(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().ListComplete(mock.Anything).Return([]domain.Campaign{{ID: "k1"}, {ID: "k2"}}, nil)
	cid := "k1"
	f.assets.EXPECT().ListAll(mock.Anything).Return([]domain.CreativeWithCampaign{
		{Creative: domain.Creative{ID: "c1", CampaignID: &cid}},
		{Creative: domain.Creative{ID: "c2"}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/with-creatives", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.CampaignWithCreatives
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Len(t, got[0].Creatives, 1)
	assert.Empty(t, got[1].Creatives)
}

func TestGetFile(t *testing.T) {
	f := newFixture(t)
	f.workflow.EXPECT().OpenFile(mock.Anything, "thumbnails/abc.jpg").Return(&port.Object{
		Body:        io.NopCloser(strings.NewReader("jpeg")),
		ContentType: "image/jpeg",
		Size:        4,
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/files/thumbnails/abc.jpg", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "jpeg", rec.Body.String())
}

func TestGetFile_Missing(t *testing.T) {
	f := newFixture(t)
	f.workflow.EXPECT().OpenFile(mock.Anything, "gone.png").Return(nil, &domain.StorageError{
		Op: "get", Key: "gone.png", Status: 404, Err: domain.ErrObjectNotFound,
	})

	rec := f.do(http.MethodGet, "/api/v1/files/gone.png", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "object_not_found", decodeError(t, rec).Code)
}

func TestStatsOverview(t *testing.T) {
	t.Run("bad from", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/api/v1/stats/overview?from=yesterday", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("counts", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().ListAll(mock.Anything).Return([]domain.CreativeWithCampaign{
			{Creative: domain.Creative{ID: "c1", FileType: "video/mp4", FileSize: 10, ApprovalStatus: domain.ApprovalPending}},
		}, nil)
		f.campaigns.EXPECT().ListComplete(mock.Anything).Return([]domain.Campaign{}, nil)

		rec := f.do(http.MethodGet, "/api/v1/stats/overview", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats domain.LibraryStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.Creatives)
		assert.Equal(t, 1, stats.Videos)
		assert.Equal(t, int64(10), stats.TotalBytes)
	})
}

func TestInternalErrorIsOpaqueStatus(t *testing.T) {
	f := newFixture(t)
	f.assets.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("pool closed"))

	rec := f.do(http.MethodGet, "/api/v1/creatives", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decodeError(t, rec).Code)
}

func TestHealth(t *testing.T) {
	ok := ReadinessCheck{Name: "postgres", Check: func(context.Context) error { return nil }}
	down := ReadinessCheck{Name: "storage", Check: func(context.Context) error { return errors.New("unreachable") }}

	t.Run("healthz", func(t *testing.T) {
		f := newFixture(t, down)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", nil, "").Code)
	})

	t.Run("ready", func(t *testing.T) {
		f := newFixture(t, ok)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz", nil, "").Code)
	})

	t.Run("not ready", func(t *testing.T) {
		f := newFixture(t, ok, down)
		rec := f.do(http.MethodGet, "/readyz", nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, map[string]any{"storage": "unreachable"}, decodeError(t, rec).Details)
	})
}

func TestOpenAPISpecServed(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/openapi.yaml", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Creative Library API")
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/healthz", nil, "")

	rec := f.do(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/healthz",status="200"}`)
}
