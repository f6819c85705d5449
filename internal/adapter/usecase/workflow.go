package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ardenpalme/app/internal/core/domain"
	"github.com/ardenpalme/app/internal/core/port"
)

// Workflow names as they appear in reports, logs and metrics.
const (
	WorkflowUploadAsset    = "upload_asset"
	WorkflowDeleteAsset    = "delete_asset"
	WorkflowDeleteCampaign = "delete_campaign"
)

var workflowSteps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "workflow_steps_total",
		Help: "Workflow steps executed, partitioned by workflow, step and outcome",
	},
	[]string{"workflow", "step", "outcome"},
)

var _ port.Workflow = (*WorkflowUseCase)(nil)

type stepPolicy int

const (
	// policyHalt stops the workflow and compensates completed steps.
	policyHalt stepPolicy = iota
	// policyBestEffort records the failure as a warning and moves on.
	policyBestEffort
)

// step is one unit of a workflow. skip, when it returns an error, marks
// the step skipped; for a halting step that also ends the workflow.
// compensate undoes a completed step after a later halting failure.
type step struct {
	name       string
	policy     stepPolicy
	skip       func() error
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// WorkflowUseCase sequences the operations that span object storage and
// the record services. Steps run one after another in declaration order.
type WorkflowUseCase struct {
	assets      port.AssetService
	campaigns   port.CampaignService
	storage     port.ObjectStorage
	probe       port.MediaProbe
	thumbPrefix string
	logger      *slog.Logger
}

// NewWorkflowUseCase wires the coordinator. thumbPrefix is prepended to
// the keys of derived video thumbnails.
func NewWorkflowUseCase(
	assets port.AssetService,
	campaigns port.CampaignService,
	storage port.ObjectStorage,
	probe port.MediaProbe,
	thumbPrefix string,
	logger *slog.Logger,
) *WorkflowUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkflowUseCase{
		assets:      assets,
		campaigns:   campaigns,
		storage:     storage,
		probe:       probe,
		thumbPrefix: thumbPrefix,
		logger:      logger,
	}
}

// ThumbnailKey returns the storage key of the thumbnail derived from the
// payload stored under key.
func ThumbnailKey(prefix, key string) string {
	return prefix + strings.TrimSuffix(key, path.Ext(key)) + ".jpg"
}

// UploadAsset stores a new payload and registers it as a creative. The
// input is validated before anything is stored. When the record cannot be
// created the stored payload and thumbnail are deleted again unless ctx
// was cancelled.
func (u *WorkflowUseCase) UploadAsset(ctx context.Context, req port.UploadRequest) (*domain.CreativeWithCampaign, *domain.WorkflowReport, error) {
	report := &domain.WorkflowReport{Workflow: WorkflowUploadAsset, Steps: []domain.StepResult{}}

	ext := strings.ToLower(filepath.Ext(req.OriginalFilename))
	contentType := req.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(req.OriginalFilename), filepath.Ext(req.OriginalFilename))
	}
	if req.Path == "" {
		return nil, report, domain.NewValidationError("file", "is required")
	}

	key := uuid.NewString() + ext
	thumbKey := ThumbnailKey(u.thumbPrefix, key)
	isVideo := domain.IsVideoType(contentType)

	form := domain.CreativeForm{
		Name:        name,
		Notes:       req.Notes,
		Tags:        NormalizeTags(req.Tags),
		ProofOfPlay: req.ProofOfPlay,
		FileURL:     key,
		FileType:    contentType,
		FileSize:    req.Size,
		OrgID:       req.OrgID,
		SubmittedBy: req.SubmittedBy,
	}
	if isVideo {
		form.ThumbnailURL = &thumbKey
	}
	if err := validateStruct(form); err != nil {
		return nil, report, err
	}

	var created *domain.CreativeWithCampaign
	steps := []step{{
		name: "probe",
		run: func(ctx context.Context) error {
			md, err := u.probe.Metadata(ctx, req.Path, contentType)
			if err != nil {
				return err
			}
			form.Width, form.Height = md.Width, md.Height
			if isVideo {
				form.Duration = md.Duration
			}
			return nil
		},
	}}
	if isVideo {
		steps = append(steps, step{
			name: "thumbnail",
			run: func(ctx context.Context) error {
				data, err := u.probe.VideoThumbnail(ctx, req.Path)
				if err != nil {
					return err
				}
				return u.storage.Put(ctx, thumbKey, bytes.NewReader(data), int64(len(data)), "image/jpeg")
			},
			compensate: func(ctx context.Context) error {
				return u.storage.Delete(ctx, thumbKey)
			},
		})
	}
	steps = append(steps,
		step{
			name: "store",
			run: func(ctx context.Context) error {
				f, err := os.Open(req.Path)
				if err != nil {
					return err
				}
				defer f.Close()
				return u.storage.Put(ctx, key, f, req.Size, contentType)
			},
			compensate: func(ctx context.Context) error {
				return u.storage.Delete(ctx, key)
			},
		},
		step{
			name: "record",
			run: func(ctx context.Context) error {
				var err error
				created, err = u.assets.Add(ctx, form)
				return err
			},
		},
	)

	if err := u.run(ctx, report, steps); err != nil {
		return nil, report, err
	}
	u.logger.InfoContext(ctx, "creative uploaded",
		slog.String("creative_id", created.ID),
		slog.String("key", key),
		slog.Int64("size", req.Size),
	)
	return created, report, nil
}

// DeleteAsset removes the creative record and then, best effort, its
// payload and thumbnail. Storage failures show up as report warnings only.
// Once the record is gone the cleanup no longer follows ctx cancellation,
// so a dropped client does not orphan the objects.
func (u *WorkflowUseCase) DeleteAsset(ctx context.Context, id string) (*domain.WorkflowReport, error) {
	report := &domain.WorkflowReport{Workflow: WorkflowDeleteAsset, Steps: []domain.StepResult{}}

	var removed *domain.Creative
	err := u.run(ctx, report, []step{{
		name: "record",
		run: func(ctx context.Context) error {
			var err error
			removed, err = u.assets.Delete(ctx, id)
			return err
		},
	}})
	if err != nil {
		return report, err
	}

	cleanup := []step{{
		name:   "object",
		policy: policyBestEffort,
		run: func(ctx context.Context) error {
			return u.storage.Delete(ctx, removed.FileURL)
		},
	}}
	if thumbKey, ok := u.thumbnailKeyOf(removed); ok {
		cleanup = append(cleanup, step{
			name:   "thumbnail",
			policy: policyBestEffort,
			run: func(ctx context.Context) error {
				return u.storage.Delete(ctx, thumbKey)
			},
		})
	}
	return report, u.run(context.WithoutCancel(ctx), report, cleanup)
}

// DeleteCampaign unassigns every creative of the campaign one by one and
// then deletes the campaign. Unassign failures do not stop the loop, but
// any of them leaves the campaign in place.
func (u *WorkflowUseCase) DeleteCampaign(ctx context.Context, id string) (*domain.WorkflowReport, error) {
	report := &domain.WorkflowReport{Workflow: WorkflowDeleteCampaign, Steps: []domain.StepResult{}}

	var assigned []domain.CreativeWithCampaign
	err := u.run(ctx, report, []step{{
		name: "creatives",
		run: func(ctx context.Context) error {
			var err error
			assigned, err = u.assets.ListByCampaign(ctx, id)
			return err
		},
	}})
	if err != nil {
		return report, err
	}

	failed := 0
	steps := make([]step, 0, len(assigned)+1)
	for _, c := range assigned {
		creativeID := c.ID
		steps = append(steps, step{
			name:   "unassign:" + creativeID,
			policy: policyBestEffort,
			run: func(ctx context.Context) error {
				if err := u.assets.UnassignCampaign(ctx, creativeID); err != nil {
					failed++
					return err
				}
				return nil
			},
		})
	}
	steps = append(steps, step{
		name: "campaign",
		skip: func() error {
			if failed > 0 {
				return fmt.Errorf("%w: %d creatives are still assigned", domain.ErrConstraint, failed)
			}
			return nil
		},
		run: func(ctx context.Context) error {
			return u.campaigns.Delete(ctx, id)
		},
	})
	return report, u.run(ctx, report, steps)
}

// thumbnailKeyOf returns the recorded thumbnail key of c. Videos recorded
// without one fall back to the key derived from the current prefix.
func (u *WorkflowUseCase) thumbnailKeyOf(c *domain.Creative) (string, bool) {
	if c.ThumbnailURL != nil && *c.ThumbnailURL != "" {
		return *c.ThumbnailURL, true
	}
	if c.IsVideo() {
		return ThumbnailKey(u.thumbPrefix, c.FileURL), true
	}
	return "", false
}

// OpenFile streams the object stored under key.
func (u *WorkflowUseCase) OpenFile(ctx context.Context, key string) (*port.Object, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return nil, domain.NewValidationError("key", "is required")
	}
	if path.Clean("/"+key) != "/"+key {
		return nil, domain.NewValidationError("key", "is invalid")
	}
	return u.storage.Get(ctx, key)
}

type completedStep struct {
	index int
	step  step
}

// run executes steps in order and appends their outcomes to report. A
// halting failure compensates the steps completed in this call, newest
// first, and is returned as *domain.WorkflowError.
func (u *WorkflowUseCase) run(ctx context.Context, report *domain.WorkflowReport, steps []step) error {
	var completed []completedStep
	for _, s := range steps {
		if s.skip != nil {
			if reason := s.skip(); reason != nil {
				u.record(report, s.name, domain.StepSkipped, reason)
				if s.policy == policyHalt {
					return &domain.WorkflowError{Workflow: report.Workflow, Step: s.name, Err: reason}
				}
				continue
			}
		}

		err := s.run(ctx)
		if err == nil {
			idx := u.record(report, s.name, domain.StepSucceeded, nil)
			if s.compensate != nil {
				completed = append(completed, completedStep{index: idx, step: s})
			}
			continue
		}

		u.record(report, s.name, domain.StepFailed, err)
		if s.policy == policyBestEffort {
			u.logger.WarnContext(ctx, "workflow step failed",
				slog.String("workflow", report.Workflow),
				slog.String("step", s.name),
				slog.Bool("consistency_warning", true),
				slog.Any("error", err),
			)
			continue
		}

		u.compensate(ctx, report, completed)
		return &domain.WorkflowError{Workflow: report.Workflow, Step: s.name, Err: err}
	}
	return nil
}

func (u *WorkflowUseCase) compensate(ctx context.Context, report *domain.WorkflowReport, completed []completedStep) {
	if len(completed) == 0 {
		return
	}
	if ctx.Err() != nil {
		names := make([]string, 0, len(completed))
		for _, c := range completed {
			names = append(names, c.step.name)
		}
		u.logger.WarnContext(ctx, "workflow cancelled, completed steps left in place",
			slog.String("workflow", report.Workflow),
			slog.Any("steps", names),
			slog.Bool("consistency_warning", true),
		)
		return
	}

	for i := len(completed) - 1; i >= 0; i-- {
		c := completed[i]
		if err := c.step.compensate(ctx); err != nil {
			u.record(report, c.step.name+":compensate", domain.StepFailed, err)
			u.logger.WarnContext(ctx, "compensation failed",
				slog.String("workflow", report.Workflow),
				slog.String("step", c.step.name),
				slog.Bool("consistency_warning", true),
				slog.Any("error", err),
			)
			continue
		}
		report.Steps[c.index].Outcome = domain.StepCompensated
		workflowSteps.WithLabelValues(report.Workflow, stepKind(c.step.name), string(domain.StepCompensated)).Inc()
	}
}

// record appends a step result and returns its index in report.Steps.
func (u *WorkflowUseCase) record(report *domain.WorkflowReport, name string, outcome domain.StepOutcome, err error) int {
	res := domain.StepResult{Name: name, Outcome: outcome}
	if err != nil {
		res.Error = err.Error()
	}
	report.Steps = append(report.Steps, res)
	workflowSteps.WithLabelValues(report.Workflow, stepKind(name), string(outcome)).Inc()
	return len(report.Steps) - 1
}

// stepKind drops the per-entity suffix of a step name so metric labels
// stay bounded.
func stepKind(name string) string {
	kind, _, _ := strings.Cut(name, ":")
	return kind
}
