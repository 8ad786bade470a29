package core

import "slices"

// HighlightStore holds the names of the prerequisites of the hovered course.
// It is owned by a single event loop and is not safe for concurrent use.
type HighlightStore struct {
	prereqs []string
}

// NewHighlightStore creates an empty store
func NewHighlightStore() *HighlightStore {
	return &HighlightStore{}
}

// OnEnter replaces the highlight set with the given prerequisites
func (h *HighlightStore) OnEnter(prereqs []string) {
	h.prereqs = slices.Clone(prereqs)
}

// OnLeave clears the highlight set
func (h *HighlightStore) OnLeave() {
	h.prereqs = nil
}

// Contains reports whether name is in the highlight set
func (h *HighlightStore) Contains(name string) bool {
	return slices.Contains(h.prereqs, name)
}

// Snapshot returns a copy of the current highlight set
func (h *HighlightStore) Snapshot() []string {
	return slices.Clone(h.prereqs)
}

// Len returns the size of the highlight set
func (h *HighlightStore) Len() int {
	return len(h.prereqs)
}
