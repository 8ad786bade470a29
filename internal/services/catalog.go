package services

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"degree_flowchart/internal/logger"
	"degree_flowchart/pkg"

	"gopkg.in/yaml.v3"
)

// CatalogFile represents the structure of a catalog yaml file
type CatalogFile struct {
	Courses map[string]pkg.CourseDefinition `yaml:"courses"`
}

// CatalogService resolves course definitions by course name
type CatalogService struct {
	courses map[string]pkg.CourseDefinition
}

// NewCatalogService creates a catalog from the given definitions
func NewCatalogService(courses map[string]pkg.CourseDefinition) *CatalogService {
	catalog := &CatalogService{courses: make(map[string]pkg.CourseDefinition, len(courses))}
	for name, def := range courses {
		catalog.courses[name] = def
	}
	return catalog
}

// LoadCatalog loads a catalog from a yaml file
func LoadCatalog(path string) (*CatalogService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog YAML: %w", err)
	}

	logger.Debug().Str("path", path).Int("count", len(file.Courses)).Msg("catalog loaded")
	return NewCatalogService(file.Courses), nil
}

// Lookup returns the definition of the named course
func (c *CatalogService) Lookup(name string) (*pkg.CourseDefinition, bool) {
	def, ok := c.courses[name]
	if !ok {
		return nil, false
	}
	def.Prereqs = slices.Clone(def.Prereqs)
	return &def, true
}

// Len returns the number of courses in the catalog
func (c *CatalogService) Len() int {
	return len(c.courses)
}

// Resolve returns a copy of placements where every placement without a
// definition is linked to the catalog entry of the same name, if any.
func (c *CatalogService) Resolve(placements []pkg.CoursePlacement) []pkg.CoursePlacement {
	resolved := slices.Clone(placements)
	missing := 0

	for i := range resolved {
		if resolved[i].Definition != nil {
			continue
		}
		if def, ok := c.Lookup(resolved[i].Name); ok {
			resolved[i].Definition = def
		} else {
			missing++
		}
	}

	if missing > 0 {
		logger.Debug().Int("unresolved", missing).Msg("placements without catalog entry")
	}
	return resolved
}

// PrerequisiteNotes formats the prerequisite note shown on a course box
func PrerequisiteNotes(def *pkg.CourseDefinition) string {
	if def == nil || len(def.Prereqs) == 0 {
		return ""
	}
	return "Prereqs: " + strings.Join(def.Prereqs, ", ")
}
