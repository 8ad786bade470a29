package pkg

// Flowchart Core Types shared by the composer, storage and rendering layers

// CourseDefinition is catalog metadata for a course, independent of placement
type CourseDefinition struct {
	Name    string   `json:"name" yaml:"name"` // human readable title
	Desc    string   `json:"desc" yaml:"desc"`
	Credits string   `json:"credits" yaml:"credits"`            // parsed as an integer
	Prereqs []string `json:"prereqs" yaml:"prereqs,omitempty"` // course names
}

// CoursePlacement is one course positioned on the flowchart
type CoursePlacement struct {
	Name        string            `json:"name" yaml:"name"`
	Credits     string            `json:"credits" yaml:"credits"`
	Semester    string            `json:"semester" yaml:"semester"` // e.g. "Fall-1"
	Color       string            `json:"color" yaml:"color"`       // color-category key
	Checked     bool              `json:"checked" yaml:"checked"`   // taken
	Restriction string            `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Definition  *CourseDefinition `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// ColorConfig maps color categories to display colors plus their priority order
type ColorConfig struct {
	Colors map[string]string `json:"colors" yaml:"colors"`
	Order  []string          `json:"color_order" yaml:"color_order"`
}

// Plan is the unit stored by plan repositories: one student's flowchart input
type Plan struct {
	ID         string            `json:"id" yaml:"id"`
	Title      string            `json:"title,omitempty" yaml:"title,omitempty"`
	Placements []CoursePlacement `json:"placements" yaml:"placements"`
	Colors     *ColorConfig      `json:"colors,omitempty" yaml:"colors,omitempty"` // overrides config file colors
}

// CreditPair holds taken and total credit hours for a group of placements
type CreditPair struct {
	Taken int `json:"taken"`
	Total int `json:"total"`
}

// CourseView is one course box as consumed by the renderer
type CourseView struct {
	Name           string `json:"name"`
	Credits        string `json:"credits"`
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Restriction    string `json:"restriction,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Category       string `json:"category"`
	Color          string `json:"color,omitempty"`
	Taken          bool   `json:"taken"`
	IsPrerequisite bool   `json:"is_prerequisite"`
}

// SemesterGroup is one semester column of a year
type SemesterGroup struct {
	Semester string       `json:"semester"` // full key, e.g. "Fall-1"
	Name     string       `json:"name"`     // display name, e.g. "Fall"
	Courses  []CourseView `json:"courses"`
	Credits  CreditPair   `json:"credits"`
}

// YearGroup holds the semesters of one year, sorted by semester key
type YearGroup struct {
	Year      string          `json:"year"`
	Semesters []SemesterGroup `json:"semesters"`
}

// LegendEntry is one (category, color) pair of the legend
type LegendEntry struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// FlowchartView is the complete view model emitted by the composer
type FlowchartView struct {
	Years  []YearGroup   `json:"years"`
	Legend []LegendEntry `json:"legend"`
}

// HoverEventKind distinguishes hover enter and leave events
type HoverEventKind string

const (
	HoverEnter HoverEventKind = "enter"
	HoverLeave HoverEventKind = "leave"
)

// HoverEvent is a mouse-in / mouse-out on a course box
type HoverEvent struct {
	Kind   HoverEventKind `json:"kind"`
	Course string         `json:"course,omitempty"` // hovered course name, enter only
}
