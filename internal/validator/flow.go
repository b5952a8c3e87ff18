// Package validator checks how the sections of an SWML document connect.
package validator

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aretw0/swml/internal/presentation/graph"
)

// Issue is one problem found in the section graph.
type Issue struct {
	Section string
	Message string
}

func (i Issue) String() string { return fmt.Sprintf("section %q: %s", i.Section, i.Message) }

// FlowError lists every issue found by ValidateFlow.
type FlowError struct {
	Issues []Issue
}

func (e *FlowError) Error() string {
	lines := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		lines[i] = issue.String()
	}
	return fmt.Sprintf("found %d flow errors:\n- %s", len(e.Issues), strings.Join(lines, "\n- "))
}

// ValidateFlow crawls the document from start and reports jumps to sections
// that do not exist and sections that can never run. Destinations that look
// like URLs or document paths are treated as external and not followed.
func ValidateFlow(tree any, start string) error {
	flow, err := graph.Analyze(tree)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(flow.Sections))
	for _, s := range flow.Sections {
		known[s] = true
	}
	next := make(map[string][]graph.Edge)
	for _, e := range flow.Edges {
		next[e.From] = append(next[e.From], e)
	}

	var issues []Issue
	if !known[start] {
		issues = append(issues, Issue{Section: start, Message: "start section is missing"})
		return &FlowError{Issues: issues}
	}

	visited := make(map[string]bool)
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, e := range next[current] {
			switch {
			case e.Dotted:
			case e.External && !isExternal(e.To):
				issues = append(issues, Issue{Section: current, Message: fmt.Sprintf("jumps to undefined section %q", e.To)})
			case !e.External && !visited[e.To]:
				queue = append(queue, e.To)
			}
		}
	}

	for _, s := range flow.Sections {
		if !visited[s] {
			issues = append(issues, Issue{Section: s, Message: "unreachable from " + start})
		}
	}

	if len(issues) > 0 {
		return &FlowError{Issues: issues}
	}
	return nil
}

// isExternal reports whether dest points at another document rather than a
// section: an absolute URL or a path ending in a document extension.
func isExternal(dest string) bool {
	if u, err := url.Parse(dest); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	switch path.Ext(dest) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
