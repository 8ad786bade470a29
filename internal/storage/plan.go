package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"degree_flowchart/pkg"
)

// ErrPlanNotFound is returned when a plan id is unknown to the store
var ErrPlanNotFound = errors.New("plan not found")

// PlanStore loads and persists flowchart plans
type PlanStore interface {
	GetPlan(ctx context.Context, planID string) (*pkg.Plan, error)
	SavePlan(ctx context.Context, plan *pkg.Plan) error
	DeletePlan(ctx context.Context, planID string) error
	ListPlans(ctx context.Context) ([]string, error)
}

// MemoryPlanStore is an in-memory implementation for development and tests
type MemoryPlanStore struct {
	plans map[string]*pkg.Plan
}

// NewMemoryPlanStore creates a new in-memory plan store
func NewMemoryPlanStore(plans ...*pkg.Plan) *MemoryPlanStore {
	store := &MemoryPlanStore{plans: make(map[string]*pkg.Plan)}
	for _, plan := range plans {
		if plan != nil && plan.ID != "" {
			store.plans[plan.ID] = clonePlan(plan)
		}
	}
	return store
}

// GetPlan retrieves a plan by id
func (m *MemoryPlanStore) GetPlan(ctx context.Context, planID string) (*pkg.Plan, error) {
	plan, exists := m.plans[planID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	return clonePlan(plan), nil
}

// SavePlan saves or replaces a plan
func (m *MemoryPlanStore) SavePlan(ctx context.Context, plan *pkg.Plan) error {
	if err := ValidatePlan(plan); err != nil {
		return err
	}
	m.plans[plan.ID] = clonePlan(plan)
	return nil
}

// DeletePlan removes a plan
func (m *MemoryPlanStore) DeletePlan(ctx context.Context, planID string) error {
	delete(m.plans, planID)
	return nil
}

// ListPlans returns the stored plan ids in sorted order
func (m *MemoryPlanStore) ListPlans(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.plans))
	for id := range m.plans {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// ValidatePlan checks the fields a store needs to persist a plan
func ValidatePlan(plan *pkg.Plan) error {
	if plan == nil {
		return fmt.Errorf("plan cannot be nil")
	}
	if plan.ID == "" {
		return fmt.Errorf("plan ID cannot be empty")
	}
	for i, placement := range plan.Placements {
		if placement.Name == "" {
			return fmt.Errorf("placement %d has empty name", i)
		}
	}
	return nil
}

// clonePlan copies a plan deeply enough that callers cannot mutate stored state
func clonePlan(plan *pkg.Plan) *pkg.Plan {
	cp := *plan
	cp.Placements = make([]pkg.CoursePlacement, len(plan.Placements))
	for i, placement := range plan.Placements {
		if placement.Definition != nil {
			def := *placement.Definition
			def.Prereqs = slices.Clone(def.Prereqs)
			placement.Definition = &def
		}
		cp.Placements[i] = placement
	}
	if plan.Colors != nil {
		colors := pkg.ColorConfig{
			Colors: make(map[string]string, len(plan.Colors.Colors)),
			Order:  slices.Clone(plan.Colors.Order),
		}
		for k, v := range plan.Colors.Colors {
			colors.Colors[k] = v
		}
		cp.Colors = &colors
	}
	return &cp
}
