package domain

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/reext/internal/adapter"
	"github.com/mouse-blink/reext/internal/controller"
	m "github.com/mouse-blink/reext/internal/model"
)

// Workflow defines the renaming operations exposed to the CLI.
type Workflow interface {
	// Run walks the plan root, renames every detected file (or simulates it)
	// and prints the summary. The first read or rename error ends the run
	// without a summary.
	Run(ctx context.Context, plan m.Plan) (m.Summary, error)
	// Plan returns the renames Run would perform, without printing or
	// touching the filesystem.
	Plan(ctx context.Context, plan m.Plan) ([]m.RenameOp, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
	}
}

func (w *workflow) Run(ctx context.Context, plan m.Plan) (m.Summary, error) {
	log := zerolog.Ctx(ctx)
	summary := m.Summary{DryRun: plan.DryRun}

	log.Debug().
		Str("root", string(plan.Root)).
		Str("target", plan.Rule.TargetExtension()).
		Bool("dry_run", plan.DryRun).
		Msg("starting traversal")

	for path := range w.fsAdapter.Walk(plan.Root, plan.Exclude) {
		detected, err := w.detect(path, plan.Rule)
		if err != nil {
			return summary, err
		}

		if !detected {
			log.Debug().Str("path", string(path)).Msg("skipped")
			continue
		}

		op := m.RenameOp{OldPath: path, NewPath: NewPath(path, plan.Rule.TargetExtension())}

		changed, err := w.apply(op, plan.DryRun)
		if err != nil {
			return summary, err
		}

		summary = summary.Record(changed)
	}

	log.Debug().
		Int("detected", summary.Detected).
		Int("changed", summary.Changed).
		Msg("traversal complete")

	w.ui.DisplaySummary(summary)

	return summary, nil
}

func (w *workflow) Plan(ctx context.Context, plan m.Plan) ([]m.RenameOp, error) {
	log := zerolog.Ctx(ctx)
	ops := []m.RenameOp{}

	for path := range w.fsAdapter.Walk(plan.Root, plan.Exclude) {
		detected, err := w.detect(path, plan.Rule)
		if err != nil {
			return nil, err
		}

		if !detected {
			continue
		}

		ops = append(ops, m.RenameOp{OldPath: path, NewPath: NewPath(path, plan.Rule.TargetExtension())})
	}

	log.Debug().Int("planned", len(ops)).Msg("plan complete")

	return ops, nil
}
