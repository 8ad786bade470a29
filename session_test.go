package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"degree_flowchart/internal/core"
	"degree_flowchart/internal/nodes"
	"degree_flowchart/internal/render"
	"degree_flowchart/internal/services"
	"degree_flowchart/internal/storage"
	"degree_flowchart/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, out *bytes.Buffer) *session {
	t.Helper()
	ctx := context.Background()

	plan := &pkg.Plan{
		ID: "demo",
		Placements: []pkg.CoursePlacement{
			{Name: "CS101", Credits: "3", Semester: "Fall-1", Color: "Major", Checked: true,
				Definition: &pkg.CourseDefinition{Name: "Intro", Desc: "Fundamentals.", Credits: "3"}},
			{Name: "CS102", Credits: "4", Semester: "Spring-1", Color: "Major",
				Definition: &pkg.CourseDefinition{Name: "Data Structures", Credits: "4", Prereqs: []string{"CS101"}}},
		},
	}
	store := storage.NewMemoryPlanStore(plan)

	composer, err := nodes.NewComposer(ctx)
	require.NoError(t, err)
	processor, err := core.NewFlowchartProcessor(plan, composer, pkg.ColorConfig{
		Colors: map[string]string{"Major": "#3b82f6"},
		Order:  []string{"Major"},
	})
	require.NoError(t, err)

	catalog := services.NewCatalogService(map[string]pkg.CourseDefinition{
		"CS101": *plan.Placements[0].Definition,
		"CS102": *plan.Placements[1].Definition,
	})
	tools, err := nodes.GetTools(catalog)
	require.NoError(t, err)

	s, err := newSession(ctx, processor, store, tools, render.Options{BoxWidth: 20}, out)
	require.NoError(t, err)
	return s
}

func TestSession_Run(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	input := strings.Join([]string{"hover CS102", "json", "leave", "plans", "bogus", "quit", "json"}, "\n")
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

	text := out.String()
	assert.Contains(t, text, "Year 1")
	assert.Contains(t, text, `"is_prerequisite": true`)
	assert.Contains(t, text, "demo")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.Equal(t, 1, strings.Count(text, `"years"`), "commands after quit must not run")
	assert.Empty(t, s.processor.Highlighted())
}

func TestSession_HandleHover(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)
	ctx := context.Background()

	quit, err := s.handle(ctx, "hover CS102")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []string{"CS101"}, s.processor.Highlighted())

	_, err = s.handle(ctx, "hover")
	assert.Error(t, err)

	_, err = s.handle(ctx, "leave")
	require.NoError(t, err)
	assert.Empty(t, s.processor.Highlighted())
}

func TestSession_Show(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)
	ctx := context.Background()

	_, err := s.handle(ctx, "show CS101")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Fundamentals.")

	_, err = s.handle(ctx, "show CS999")
	assert.Error(t, err)
}

func TestSession_CatalogTools(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)
	ctx := context.Background()

	_, err := s.handle(ctx, "lookup CS102")
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"title":"Data Structures"`)

	out.Reset()
	_, err = s.handle(ctx, "chain CS102")
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"requires":["CS101"]`)

	_, err = s.handle(ctx, "lookup")
	assert.Error(t, err)
}

func TestSession_EmptyLineAndQuit(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	quit, err := s.handle(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = s.handle(context.Background(), "QUIT")
	require.NoError(t, err)
	assert.True(t, quit)
}
