package nodes

import (
	"context"
	"fmt"
	"strings"

	"degree_flowchart/internal/logger"
	"degree_flowchart/internal/services"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
)

const (
	ToolCourseLookup = "course_lookup"
	ToolPrereqChain  = "prerequisite_chain"
)

// CourseQuery is the argument object accepted by the catalog tools
type CourseQuery struct {
	Course string `json:"course" jsonschema:"description=course name, e.g. CS101"`
}

// CourseInfo is the result of a course lookup
type CourseInfo struct {
	Course  string   `json:"course"`
	Found   bool     `json:"found"`
	Title   string   `json:"title,omitempty"`
	Desc    string   `json:"desc,omitempty"`
	Credits string   `json:"credits,omitempty"`
	Prereqs []string `json:"prereqs,omitempty"`
}

// PrereqChain lists every course transitively required before Course, nearest first
type PrereqChain struct {
	Course   string   `json:"course"`
	Requires []string `json:"requires"`
}

// CourseLookupTool exposes a catalog lookup as an eino tool
func CourseLookupTool(catalog *services.CatalogService) (tool.InvokableTool, error) {
	return utils.InferTool(ToolCourseLookup, "Look up a course definition in the catalog",
		func(ctx context.Context, query CourseQuery) (CourseInfo, error) {
			name := strings.TrimSpace(query.Course)
			if name == "" {
				return CourseInfo{}, fmt.Errorf("course is required")
			}
			logger.Debug().Str("course", name).Msg("course lookup")

			def, ok := catalog.Lookup(name)
			if !ok {
				return CourseInfo{Course: name}, nil
			}
			return CourseInfo{
				Course:  name,
				Found:   true,
				Title:   def.Name,
				Desc:    def.Desc,
				Credits: def.Credits,
				Prereqs: def.Prereqs,
			}, nil
		})
}

// PrereqChainTool walks prerequisites breadth first through the catalog.
// Cycles are cut at the first repeat.
func PrereqChainTool(catalog *services.CatalogService) (tool.InvokableTool, error) {
	return utils.InferTool(ToolPrereqChain, "List every course required before the given course",
		func(ctx context.Context, query CourseQuery) (PrereqChain, error) {
			name := strings.TrimSpace(query.Course)
			if name == "" {
				return PrereqChain{}, fmt.Errorf("course is required")
			}

			seen := map[string]bool{name: true}
			requires := []string{}
			queue := []string{name}
			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]

				def, ok := catalog.Lookup(current)
				if !ok {
					continue
				}
				for _, prereq := range def.Prereqs {
					if seen[prereq] {
						continue
					}
					seen[prereq] = true
					requires = append(requires, prereq)
					queue = append(queue, prereq)
				}
			}

			logger.Debug().Str("course", name).Int("requires", len(requires)).Msg("prerequisite chain")
			return PrereqChain{Course: name, Requires: requires}, nil
		})
}

// GetTools returns the catalog tools
func GetTools(catalog *services.CatalogService) ([]tool.InvokableTool, error) {
	lookup, err := CourseLookupTool(catalog)
	if err != nil {
		return nil, fmt.Errorf("error creating %s tool: %w", ToolCourseLookup, err)
	}
	chain, err := PrereqChainTool(catalog)
	if err != nil {
		return nil, fmt.Errorf("error creating %s tool: %w", ToolPrereqChain, err)
	}
	return []tool.InvokableTool{lookup, chain}, nil
}
