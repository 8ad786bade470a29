package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightStore_InitiallyEmpty(t *testing.T) {
	store := NewHighlightStore()

	assert.Empty(t, store.Snapshot())
	assert.Equal(t, 0, store.Len())
	assert.False(t, store.Contains("CS101"))
}

func TestHighlightStore_EnterThenLeave(t *testing.T) {
	store := NewHighlightStore()

	store.OnEnter([]string{"CS101"})
	assert.True(t, store.Contains("CS101"))

	store.OnLeave()
	assert.Empty(t, store.Snapshot())
	assert.False(t, store.Contains("CS101"))
}

func TestHighlightStore_EnterReplaces(t *testing.T) {
	store := NewHighlightStore()

	store.OnEnter([]string{"CS101"})
	store.OnEnter([]string{"CS102"})

	assert.Equal(t, []string{"CS102"}, store.Snapshot())
	assert.False(t, store.Contains("CS101"))
}

func TestHighlightStore_EnterEmpty(t *testing.T) {
	store := NewHighlightStore()

	store.OnEnter([]string{"CS101", "MATH150"})
	store.OnEnter(nil)

	assert.Empty(t, store.Snapshot())
}

func TestHighlightStore_LeaveWithoutEnter(t *testing.T) {
	store := NewHighlightStore()

	store.OnLeave()
	store.OnLeave()

	assert.Empty(t, store.Snapshot())
}

func TestHighlightStore_CopiesInput(t *testing.T) {
	store := NewHighlightStore()
	prereqs := []string{"CS101"}

	store.OnEnter(prereqs)
	prereqs[0] = "CS999"
	snapshot := store.Snapshot()
	snapshot[0] = "CS000"

	assert.Equal(t, []string{"CS101"}, store.Snapshot())
}
