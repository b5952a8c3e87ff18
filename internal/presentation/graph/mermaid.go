// Package graph draws the control flow of an SWML document.
package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/swml/pkg/codec"
)

// ErrNoSections is returned for trees without a sections mapping.
var ErrNoSections = errors.New("document has no sections mapping")

// Edge is a jump from one section to another, or to an external document.
type Edge struct {
	From, To string
	Label    string
	// Dotted marks a goto, which stays inside From.
	Dotted bool
	// External marks a destination that is not a section of the document.
	External bool
}

// Flow is the section graph of a document.
type Flow struct {
	Sections []string
	Edges    []Edge
}

type walker struct {
	sections map[string]bool
	edges    []Edge
	seen     map[Edge]bool
}

// Analyze extracts the section graph from a decoded document. Jumps nested
// in cond, switch or a result branch are labelled with the branch that leads
// to them.
func Analyze(tree any) (Flow, error) {
	raw, ok := codec.Lookup(tree, "sections")
	if !ok {
		return Flow{}, ErrNoSections
	}
	sections, ok := codec.Entries(raw)
	if !ok {
		return Flow{}, ErrNoSections
	}

	w := &walker{sections: make(map[string]bool), seen: make(map[Edge]bool)}
	flow := Flow{Sections: make([]string, 0, len(sections))}
	for _, s := range sections {
		w.sections[s.Key] = true
		flow.Sections = append(flow.Sections, s.Key)
	}
	for _, s := range sections {
		w.walkList(s.Key, s.Value, nil)
	}
	flow.Edges = w.edges
	return flow, nil
}

// GenerateMermaid produces a Mermaid flowchart from a decoded document.
// Every section becomes a node; "main" is drawn as a circle. Edges are:
//   - execute and transfer: solid, to the target section or an external node
//   - goto: dotted, looping back to the section that holds the label
func GenerateMermaid(tree any) (string, error) {
	flow, err := Analyze(tree)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, name := range flow.Sections {
		opener, closer := "[", "]"
		if name == "main" {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(name), opener, escape(name), closer)
	}
	external := make(map[string]bool)
	for _, e := range flow.Edges {
		if e.External && !external[e.To] {
			external[e.To] = true
			fmt.Fprintf(&sb, "    %s>\"%s\"]\n", externalID(e.To), escape(e.To))
		}
	}
	for _, e := range flow.Edges {
		sb.WriteString("    " + render(e) + "\n")
	}
	return sb.String(), nil
}

func render(e Edge) string {
	from, to := sanitizeMermaidID(e.From), sanitizeMermaidID(e.To)
	if e.External {
		to = externalID(e.To)
	}
	switch {
	case e.Dotted:
		return fmt.Sprintf("%s -. \"%s\" .-> %s", from, escape(e.Label), to)
	case e.Label != "":
		return fmt.Sprintf("%s -- \"%s\" --> %s", from, escape(e.Label), to)
	}
	return fmt.Sprintf("%s --> %s", from, to)
}

func (w *walker) add(e Edge) {
	if w.seen[e] {
		return
	}
	w.seen[e] = true
	w.edges = append(w.edges, e)
}

func (w *walker) walkList(section string, list any, path []string) {
	items, _ := list.([]any)
	for _, item := range items {
		w.walkInstruction(section, item, path)
	}
}

func (w *walker) walkInstruction(section string, item any, path []string) {
	entries, ok := codec.Entries(item)
	if !ok || len(entries) != 1 {
		return
	}
	verb, body := entries[0].Key, entries[0].Value

	switch verb {
	case "execute", "transfer":
		dest, _ := codec.Lookup(body, "dest")
		if s, ok := dest.(string); ok && s != "" {
			w.jump(section, s, label(path, verb))
		}
	case "goto":
		target, _ := codec.Lookup(body, "label")
		if s, ok := target.(string); ok {
			w.add(Edge{From: section, To: section, Label: "goto " + s, Dotted: true})
		}
	case "cond":
		w.walkCond(section, body, path)
	case "switch":
		w.walkSwitch(section, body, path)
	}

	if result, ok := codec.Lookup(body, "result"); ok {
		w.walkResult(section, result, append(path, verb))
	}
}

func (w *walker) walkCond(section string, body any, path []string) {
	when, _ := codec.Lookup(body, "when")
	if then, ok := codec.Lookup(body, "then"); ok {
		w.walkList(section, then, append(path, fmt.Sprintf("when %v", when)))
	}
	if otherwise, ok := codec.Lookup(body, "else"); ok {
		w.walkList(section, otherwise, append(path, "else"))
	}
}

func (w *walker) walkSwitch(section string, body any, path []string) {
	variable, _ := codec.Lookup(body, "variable")
	cases, _ := codec.Lookup(body, "case")
	entries, _ := codec.Entries(cases)
	for _, c := range entries {
		w.walkList(section, c.Value, append(path, fmt.Sprintf("%v = %s", variable, c.Key)))
	}
	if def, ok := codec.Lookup(body, "default"); ok {
		w.walkList(section, def, append(path, "default"))
	}
}

// walkResult handles both the single-branch and the list form.
func (w *walker) walkResult(section string, result any, path []string) {
	if list, ok := result.([]any); ok {
		w.walkList(section, list, path)
		return
	}
	w.walkInstruction(section, result, path)
}

func (w *walker) jump(section, dest, lbl string) {
	w.add(Edge{From: section, To: dest, Label: lbl, External: !w.sections[dest]})
}

// label drops the verb for unconditional jumps.
func label(path []string, verb string) string {
	if len(path) == 0 {
		if verb == "transfer" {
			return "transfer"
		}
		return ""
	}
	return strings.Join(path, " / ")
}

func externalID(dest string) string { return "ext_" + sanitizeMermaidID(dest) }

func escape(s string) string { return strings.ReplaceAll(s, "\"", "'") }

func sanitizeMermaidID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
