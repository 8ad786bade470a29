package nodes

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"degree_flowchart/internal/core"
	"degree_flowchart/internal/services"
	"degree_flowchart/pkg"

	"github.com/cloudwego/eino/compose"
)

// Node names of the composition chain
const (
	NodeGroupSemesters = "group_semesters"
	NodeGroupYears     = "group_years"
	NodeBuildView      = "build_view"
)

type semesterEntries = core.Group[string, pkg.CoursePlacement]

// composeState is passed between the chain stages of one render cycle
type composeState struct {
	request   *core.ComposeRequest
	semesters []semesterEntries
	years     []core.Group[string, semesterEntries]
}

// Composer builds the year → semester → course view model with an eino chain
type Composer struct {
	chain compose.Runnable[*core.ComposeRequest, *pkg.FlowchartView]
}

// NewComposer compiles the composition chain
func NewComposer(ctx context.Context) (*Composer, error) {
	// Create the Eino chain: group semesters → group years → build view
	chain, err := compose.NewChain[*core.ComposeRequest, *pkg.FlowchartView]().
		AppendLambda(compose.InvokableLambda(groupSemesters), compose.WithNodeName(NodeGroupSemesters)).
		AppendLambda(compose.InvokableLambda(groupYears), compose.WithNodeName(NodeGroupYears)).
		AppendLambda(compose.InvokableLambda(buildView), compose.WithNodeName(NodeBuildView)).
		Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating Eino chain: %w", err)
	}

	return &Composer{chain: chain}, nil
}

// Compose runs one render cycle. The request is not modified.
func (c *Composer) Compose(ctx context.Context, req core.ComposeRequest) (*pkg.FlowchartView, error) {
	return c.chain.Invoke(ctx, &req)
}

// groupSemesters groups placements by their semester key
func groupSemesters(_ context.Context, req *core.ComposeRequest) (*composeState, error) {
	if req == nil {
		return nil, fmt.Errorf("compose request cannot be nil")
	}

	return &composeState{
		request: req,
		semesters: core.GroupBy(req.Placements, func(p pkg.CoursePlacement) string {
			return p.Semester
		}),
	}, nil
}

// groupYears groups the semester entries by the year suffix of their key
func groupYears(_ context.Context, state *composeState) (*composeState, error) {
	years := make(map[string]string, len(state.semesters))
	for _, sem := range state.semesters {
		_, year, err := core.SplitSemesterKey(sem.Key)
		if err != nil {
			return nil, err
		}
		years[sem.Key] = year
	}

	state.years = core.GroupBy(state.semesters, func(sem semesterEntries) string {
		return years[sem.Key]
	})
	return state, nil
}

// buildView sorts semesters and courses, computes credits and derives the
// per-course flags from the highlight snapshot
func buildView(_ context.Context, state *composeState) (*pkg.FlowchartView, error) {
	req := state.request
	order := core.ColorOrder(req.Colors.Order)

	view := &pkg.FlowchartView{
		Years:  make([]pkg.YearGroup, 0, len(state.years)),
		Legend: core.Legend(req.Colors),
	}

	for _, year := range state.years {
		semesters := slices.Clone(year.Items)
		slices.SortStableFunc(semesters, func(a, b semesterEntries) int {
			return strings.Compare(a.Key, b.Key)
		})

		yearGroup := pkg.YearGroup{
			Year:      year.Key,
			Semesters: make([]pkg.SemesterGroup, 0, len(semesters)),
		}
		for _, sem := range semesters {
			group, err := buildSemester(sem, order, req)
			if err != nil {
				return nil, err
			}
			yearGroup.Semesters = append(yearGroup.Semesters, group)
		}
		view.Years = append(view.Years, yearGroup)
	}

	return view, nil
}

func buildSemester(sem semesterEntries, order core.ColorOrder, req *core.ComposeRequest) (pkg.SemesterGroup, error) {
	name, _, err := core.SplitSemesterKey(sem.Key)
	if err != nil {
		return pkg.SemesterGroup{}, err
	}

	placements := slices.Clone(sem.Items)
	core.SortByColor(placements, order, func(p pkg.CoursePlacement) string {
		return p.Color
	})

	credits, err := core.SemesterCredits(placements)
	if err != nil {
		return pkg.SemesterGroup{}, err
	}

	courses := make([]pkg.CourseView, 0, len(placements))
	for _, p := range placements {
		courses = append(courses, courseView(p, req))
	}

	return pkg.SemesterGroup{
		Semester: sem.Key,
		Name:     name,
		Courses:  courses,
		Credits:  credits,
	}, nil
}

func courseView(p pkg.CoursePlacement, req *core.ComposeRequest) pkg.CourseView {
	course := pkg.CourseView{
		Name:           p.Name,
		Credits:        p.Credits,
		Restriction:    p.Restriction,
		Category:       p.Color,
		Color:          req.Colors.Colors[p.Color],
		Taken:          p.Checked,
		IsPrerequisite: slices.Contains(req.Highlight, p.Name),
	}

	if p.Definition != nil {
		course.Title = p.Definition.Name
		course.Description = p.Definition.Desc
		course.Notes = services.PrerequisiteNotes(p.Definition)
	}

	return course
}
