package core

import (
	"context"

	"degree_flowchart/pkg"
)

// Composer turns a flat placement list into the nested flowchart view model
type Composer interface {
	Compose(ctx context.Context, req ComposeRequest) (*pkg.FlowchartView, error)
}

// ComposeRequest is the complete input of one render cycle
type ComposeRequest struct {
	Placements []pkg.CoursePlacement `json:"placements"`
	Colors     pkg.ColorConfig       `json:"colors"`
	Highlight  []string              `json:"highlight"` // highlight-set snapshot
}

// Group is one entry of an insertion-ordered grouping
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}
