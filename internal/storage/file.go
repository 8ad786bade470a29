package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"degree_flowchart/internal/logger"
	"degree_flowchart/pkg"

	"gopkg.in/yaml.v3"
)

const planFileExt = ".yaml"

// FilePlanStore implements file-based plan storage, one yaml file per plan
type FilePlanStore struct {
	baseDir string
}

// NewFilePlanStore creates a new yaml-directory plan store
func NewFilePlanStore(baseDir string) *FilePlanStore {
	return &FilePlanStore{baseDir: baseDir}
}

func (f *FilePlanStore) path(planID string) string {
	return filepath.Join(f.baseDir, planID+planFileExt)
}

// GetPlan loads a plan from <baseDir>/<planID>.yaml
func (f *FilePlanStore) GetPlan(ctx context.Context, planID string) (*pkg.Plan, error) {
	data, err := os.ReadFile(f.path(planID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
		}
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan pkg.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", planID, err)
	}
	if plan.ID == "" {
		plan.ID = planID
	}

	return &plan, nil
}

// SavePlan writes a plan back to its yaml file
func (f *FilePlanStore) SavePlan(ctx context.Context, plan *pkg.Plan) error {
	if err := ValidatePlan(plan); err != nil {
		return err
	}

	if err := os.MkdirAll(f.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(f.path(plan.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	logger.Debug().Str("plan_id", plan.ID).Str("path", f.path(plan.ID)).Msg("plan saved")
	return nil
}

// DeletePlan removes a plan file; a missing file is not an error
func (f *FilePlanStore) DeletePlan(ctx context.Context, planID string) error {
	if err := os.Remove(f.path(planID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete plan file: %w", err)
	}
	return nil
}

// ListPlans returns the ids of all plan files in sorted order
func (f *FilePlanStore) ListPlans(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read plan directory: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), planFileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), planFileExt))
	}
	slices.Sort(ids)
	return ids, nil
}
