package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePlanStore(t *testing.T) {
	exercisePlanStore(t, NewFilePlanStore(filepath.Join(t.TempDir(), "plans")))
}

func TestFilePlanStore_ReadsHandWrittenYAML(t *testing.T) {
	dir := t.TempDir()
	content := `title: Minimal
placements:
  - {name: CS101, credits: "3", semester: Fall-1, color: Major, checked: true}
  - name: CS102
    credits: "4"
    semester: Spring-1
    color: Major
    restriction: Majors only
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.yaml"), []byte(content), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	store := NewFilePlanStore(dir)
	plan, err := store.GetPlan(context.Background(), "minimal")
	require.NoError(t, err)

	assert.Equal(t, "minimal", plan.ID, "id defaults to the file name")
	require.Len(t, plan.Placements, 2)
	assert.True(t, plan.Placements[0].Checked)
	assert.Nil(t, plan.Placements[0].Definition)
	assert.Equal(t, "Majors only", plan.Placements[1].Restriction)
	assert.Nil(t, plan.Colors)

	ids, err := store.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"minimal"}, ids)
}

func TestFilePlanStore_MissingDirectory(t *testing.T) {
	store := NewFilePlanStore(filepath.Join(t.TempDir(), "nope"))

	ids, err := store.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.NoError(t, store.DeletePlan(context.Background(), "ghost"))
}

func TestFilePlanStore_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("placements: {"), 0644))

	_, err := NewFilePlanStore(dir).GetPlan(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlanNotFound)
}
