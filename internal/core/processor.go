package core

import (
	"context"
	"fmt"
	"maps"
	"time"

	"degree_flowchart/internal/logger"
	"degree_flowchart/pkg"
)

// FlowchartProcessor owns one plan and its hover state and re-derives the
// view model on demand. It runs on a single event loop.
type FlowchartProcessor struct {
	plan      *pkg.Plan
	composer  Composer
	colors    pkg.ColorConfig
	highlight *HighlightStore
}

// NewFlowchartProcessor creates a processor for the plan. Colors carried by the
// plan take precedence over defaults.
func NewFlowchartProcessor(plan *pkg.Plan, composer Composer, defaults pkg.ColorConfig) (*FlowchartProcessor, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan cannot be nil")
	}
	if composer == nil {
		return nil, fmt.Errorf("composer cannot be nil")
	}

	return &FlowchartProcessor{
		plan:      plan,
		composer:  composer,
		colors:    EffectiveColors(plan, defaults),
		highlight: NewHighlightStore(),
	}, nil
}

// EffectiveColors returns the plan's own colors when present, else defaults
func EffectiveColors(plan *pkg.Plan, defaults pkg.ColorConfig) pkg.ColorConfig {
	if plan != nil && plan.Colors != nil {
		return *plan.Colors
	}
	return defaults
}

// Plan returns the plan being displayed
func (p *FlowchartProcessor) Plan() *pkg.Plan {
	return p.plan
}

// Colors returns the effective color configuration
func (p *FlowchartProcessor) Colors() pkg.ColorConfig {
	return pkg.ColorConfig{
		Colors: maps.Clone(p.colors.Colors),
		Order:  append([]string(nil), p.colors.Order...),
	}
}

// View composes the view model from the plan and the current highlight set
func (p *FlowchartProcessor) View(ctx context.Context) (*pkg.FlowchartView, error) {
	start := time.Now()

	view, err := p.composer.Compose(ctx, ComposeRequest{
		Placements: p.plan.Placements,
		Colors:     p.colors,
		Highlight:  p.highlight.Snapshot(),
	})
	if err != nil {
		logger.Warn().Err(err).Str("plan_id", p.plan.ID).Msg("flowchart composition failed")
		return nil, fmt.Errorf("error composing flowchart %s: %w", p.plan.ID, err)
	}

	logger.Debug().
		Str("plan_id", p.plan.ID).
		Int("years", len(view.Years)).
		Int("highlighted", p.highlight.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("flowchart composed")

	return view, nil
}

// Enter handles a hover enter on the named course. A course without a
// definition, or a name not on the plan, highlights nothing.
func (p *FlowchartProcessor) Enter(course string) {
	var prereqs []string
	if placement, ok := p.findPlacement(course); ok && placement.Definition != nil {
		prereqs = placement.Definition.Prereqs
	}

	p.highlight.OnEnter(prereqs)
	logger.Debug().Str("course", course).Strs("prereqs", prereqs).Msg("hover enter")
}

// Leave handles a hover leave
func (p *FlowchartProcessor) Leave() {
	p.highlight.OnLeave()
	logger.Debug().Msg("hover leave")
}

// Apply dispatches a hover event
func (p *FlowchartProcessor) Apply(event pkg.HoverEvent) error {
	switch event.Kind {
	case pkg.HoverEnter:
		p.Enter(event.Course)
	case pkg.HoverLeave:
		p.Leave()
	default:
		return fmt.Errorf("unknown hover event kind: %q", event.Kind)
	}
	return nil
}

// Highlighted returns the current highlight set
func (p *FlowchartProcessor) Highlighted() []string {
	return p.highlight.Snapshot()
}

// findPlacement returns the first placement with the given name
func (p *FlowchartProcessor) findPlacement(name string) (pkg.CoursePlacement, bool) {
	for _, placement := range p.plan.Placements {
		if placement.Name == name {
			return placement, true
		}
	}
	return pkg.CoursePlacement{}, false
}
