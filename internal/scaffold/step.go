package scaffold

import (
	"context"

	"github.com/dimi-r1/create-fb-react/internal/config"
	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// Target is the project a Sequence operates on.
type Target struct {
	// Name is the validated project name
	Name string

	// Path is the absolute project directory
	Path string
}

// Result is what a successful step reports back.
type Result struct {
	// Note, if set, replaces the step's Success text
	Note string
}

// Step is one stage of the setup sequence.
type Step struct {
	ID string

	// Title is shown while the step runs
	Title string

	// Success and Failure are shown once the step has finished
	Success string
	Failure string

	Run func(ctx context.Context, t *Target) (Result, error)
}

// Observer receives progress notifications from a running Sequence.
type Observer interface {
	StepStarted(step Step)
	StepSucceeded(step Step, note string)
	StepFailed(step Step, err error)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) StepStarted(Step)          {}
func (NopObserver) StepSucceeded(Step, string) {}
func (NopObserver) StepFailed(Step, error)     {}

// Deps are the collaborators the built-in steps need.
type Deps struct {
	Config   *config.Config
	FS       system.FileSystem
	Executor system.CommandExecutor
}

// Sequence is an ordered list of steps.
type Sequence struct {
	steps []Step
}

// NewSequence creates a Sequence running steps in the given order.
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{steps: steps}
}

// Steps returns the steps in execution order.
func (s *Sequence) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Run executes every step in order and stops at the first failure,
// which is returned as a KindStep error naming the step.
func (s *Sequence) Run(ctx context.Context, t *Target, obs Observer) error {
	if obs == nil {
		obs = NopObserver{}
	}

	for _, step := range s.steps {
		if err := ctx.Err(); err != nil {
			return errors.StepFailed(step.ID, err)
		}

		logging.Debug("step started", "step", step.ID, "path", t.Path)
		obs.StepStarted(step)

		res, err := step.Run(ctx, t)
		if err != nil {
			logging.Debug("step failed", "step", step.ID, "error", err)
			obs.StepFailed(step, err)
			return errors.StepFailed(step.ID, err)
		}

		logging.Debug("step finished", "step", step.ID)
		obs.StepSucceeded(step, res.Note)
	}

	return nil
}
