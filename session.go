package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"degree_flowchart/internal/core"
	"degree_flowchart/internal/nodes"
	"degree_flowchart/internal/render"
	"degree_flowchart/internal/storage"
	"degree_flowchart/pkg"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/tool"
)

const helpText = `Commands:
  hover <course>   highlight the prerequisites of a course
  leave            clear the highlight
  show <course>    show the course description
  lookup <course>  look up a course in the catalog
  chain <course>   list every course required before a course
  json             print the view model as JSON
  legend           print the color legend
  plans            list stored plans
  help             show this help
  quit             exit
`

// session is the interactive loop driving hover events from stdin
type session struct {
	processor *core.FlowchartProcessor
	store     storage.PlanStore
	tools     map[string]tool.InvokableTool
	opts      render.Options
	out       io.Writer
}

func newSession(ctx context.Context, processor *core.FlowchartProcessor, store storage.PlanStore, tools []tool.InvokableTool, opts render.Options, out io.Writer) (*session, error) {
	s := &session{processor: processor, store: store, tools: make(map[string]tool.InvokableTool, len(tools)), opts: opts, out: out}
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("error reading tool info: %w", err)
		}
		s.tools[info.Name] = t
	}
	return s, nil
}

// Run renders the chart once and then handles one command per input line
func (s *session) Run(ctx context.Context, in io.Reader) error {
	s.draw(ctx)
	fmt.Fprint(s.out, helpText)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		quit, err := s.handle(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}

// handle executes one command line and reports whether the loop should stop
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "hover", "enter":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: hover <course>")
		}
		if err := s.processor.Apply(pkg.HoverEvent{Kind: pkg.HoverEnter, Course: args[0]}); err != nil {
			return false, err
		}
		s.draw(ctx)

	case "leave":
		if err := s.processor.Apply(pkg.HoverEvent{Kind: pkg.HoverLeave}); err != nil {
			return false, err
		}
		s.draw(ctx)

	case "show":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: show <course>")
		}
		return false, s.show(ctx, args[0])

	case "lookup":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: lookup <course>")
		}
		return false, s.runTool(ctx, nodes.ToolCourseLookup, args[0])

	case "chain":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: chain <course>")
		}
		return false, s.runTool(ctx, nodes.ToolPrereqChain, args[0])

	case "json":
		view, err := s.processor.View(ctx)
		if err != nil {
			return false, err
		}
		data, err := sonic.ConfigDefault.MarshalIndent(view, "", "  ")
		if err != nil {
			return false, fmt.Errorf("error marshaling view: %w", err)
		}
		fmt.Fprintln(s.out, string(data))

	case "legend":
		fmt.Fprintln(s.out, render.Legend(core.Legend(s.processor.Colors())))

	case "plans":
		ids, err := s.store.ListPlans(ctx)
		if err != nil {
			return false, err
		}
		for _, id := range ids {
			fmt.Fprintln(s.out, id)
		}

	case "help":
		fmt.Fprint(s.out, helpText)

	case "quit", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q", command)
	}

	return false, nil
}

// draw renders the current view, or the composition error as a fallback
func (s *session) draw(ctx context.Context) {
	view, err := s.processor.View(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Flowchart unavailable: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, render.Flowchart(view, s.opts))
}

func (s *session) show(ctx context.Context, name string) error {
	view, err := s.processor.View(ctx)
	if err != nil {
		return err
	}
	for _, year := range view.Years {
		for _, sem := range year.Semesters {
			for _, course := range sem.Courses {
				if course.Name == name {
					fmt.Fprintln(s.out, render.Popover(course))
					return nil
				}
			}
		}
	}
	return fmt.Errorf("course %q is not on the flowchart", name)
}

// runTool invokes a catalog tool for one course and prints its JSON result
func (s *session) runTool(ctx context.Context, name, course string) error {
	t, ok := s.tools[name]
	if !ok {
		return fmt.Errorf("tool %s is not available", name)
	}

	args, err := sonic.MarshalString(nodes.CourseQuery{Course: course})
	if err != nil {
		return fmt.Errorf("error marshaling tool arguments: %w", err)
	}
	result, err := t.InvokableRun(ctx, args)
	if err != nil {
		return fmt.Errorf("error running %s: %w", name, err)
	}
	fmt.Fprintln(s.out, result)
	return nil
}
