// Package render draws a composed flowchart view model in the terminal.
package render

import (
	"strings"

	"degree_flowchart/pkg"

	"github.com/charmbracelet/lipgloss"
)

// Options controls the terminal layout
type Options struct {
	BoxWidth    int
	ShowDetails bool // show title, restriction and prerequisite notes
}

var (
	yearHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	semHeaderStyle  = lipgloss.NewStyle().Bold(true)
	semCreditsStyle = lipgloss.NewStyle().Faint(true)
	yearColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			MarginRight(1)
)

// Flowchart renders all years side by side followed by the legend
func Flowchart(view *pkg.FlowchartView, opts Options) string {
	if view == nil {
		return ""
	}

	columns := make([]string, 0, len(view.Years))
	for _, year := range view.Years {
		columns = append(columns, Year(year, opts))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		Legend(view.Legend),
	)
}

// Year renders one year column with its semesters side by side
func Year(year pkg.YearGroup, opts Options) string {
	semesters := make([]string, 0, len(year.Semesters))
	for _, sem := range year.Semesters {
		semesters = append(semesters, Semester(sem, opts))
	}

	return yearColumnStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		yearHeaderStyle.Render("Year "+year.Year),
		lipgloss.JoinHorizontal(lipgloss.Top, semesters...),
	))
}

// Semester renders a semester header, its credit line and its course boxes
func Semester(sem pkg.SemesterGroup, opts Options) string {
	rows := []string{
		semHeaderStyle.Render(sem.Name),
		semCreditsStyle.Render(sem.Label()),
	}
	for _, course := range sem.Courses {
		rows = append(rows, Course(course, opts))
	}
	return lipgloss.NewStyle().MarginRight(1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Course renders one course box. Taken courses are struck through and
// prerequisites of the hovered course get a thick border.
func Course(course pkg.CourseView, opts Options) string {
	style := lipgloss.NewStyle().Width(opts.BoxWidth).Padding(0, 1)
	if course.Color != "" {
		style = style.
			Background(lipgloss.Color(course.Color)).
			Foreground(lipgloss.Color(TextColor(course.Color)))
	}
	if course.Taken {
		style = style.Strikethrough(true)
	}
	if course.IsPrerequisite {
		style = style.Border(lipgloss.ThickBorder()).Bold(true)
	} else {
		style = style.Border(lipgloss.HiddenBorder())
	}

	lines := []string{course.Name + "  " + course.Credits}
	if opts.ShowDetails {
		if course.Title != "" {
			lines = append(lines, course.Title)
		}
		if course.Restriction != "" {
			lines = append(lines, "*"+course.Restriction+"*")
		}
		if course.Notes != "" {
			lines = append(lines, course.Notes)
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

// Legend renders the color legend in order
func Legend(entries []pkg.LegendEntry) string {
	boxes := make([]string, 0, len(entries))
	for _, entry := range entries {
		boxes = append(boxes, lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Background(lipgloss.Color(entry.Color)).
			Foreground(lipgloss.Color(TextColor(entry.Color))).
			Render(entry.Category))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Popover renders the details shown when a course box is clicked
func Popover(course pkg.CourseView) string {
	body := course.Description
	if body == "" {
		body = "(no description)"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Render(semHeaderStyle.Render(course.Name) + "\n" + body)
}
