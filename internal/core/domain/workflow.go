package domain

import "fmt"

// StepOutcome is the result of a single workflow step.
type StepOutcome string

const (
	StepSucceeded   StepOutcome = "succeeded"
	StepFailed      StepOutcome = "failed"
	StepSkipped     StepOutcome = "skipped"
	StepCompensated StepOutcome = "compensated"
)

// StepResult records what happened to one step of a workflow.
type StepResult struct {
	Name    string      `json:"name"`
	Outcome StepOutcome `json:"outcome"`
	Error   string      `json:"error,omitempty"`
}

// WorkflowReport is returned by every multi-step workflow so the caller
// can show what happened and refetch the affected views.
type WorkflowReport struct {
	Workflow string       `json:"workflow"`
	Steps    []StepResult `json:"steps"`
}

// Warnings returns the failed best-effort steps of a finished workflow.
func (r *WorkflowReport) Warnings() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Outcome == StepFailed {
			out = append(out, s)
		}
	}
	return out
}

// WorkflowError reports the step that halted a workflow. Err is the
// unchanged cause so errors.Is/As keep working through it.
type WorkflowError struct {
	Workflow string
	Step     string
	Err      error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: step %q failed: %v", e.Workflow, e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}
