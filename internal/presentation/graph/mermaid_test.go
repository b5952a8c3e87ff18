package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml/internal/presentation/graph"
	"github.com/aretw0/swml/pkg/codec"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	tree, err := codec.Decode([]byte(src), codec.YAML)
	require.NoError(t, err)
	return tree
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name: "section shapes",
			doc:  "sections:\n  main: [answer]\n  sub-menu: [hangup]\n",
			contains: []string{
				"graph TD\n",
				`main(("main"))`,
				`sub_menu["sub-menu"]`,
			},
		},
		{
			name: "execute and transfer",
			doc: `
sections:
  main:
    - execute:
        dest: menu
    - transfer:
        dest: https://example.com/next.yaml
  menu: [hangup]
`,
			contains: []string{
				"main --> menu",
				`ext_https___example_com_next_yaml>"https://example.com/next.yaml"]`,
				`main -- "transfer" --> ext_https___example_com_next_yaml`,
			},
		},
		{
			name: "goto is dotted",
			doc:  "sections:\n  main:\n    - goto:\n        label: top\n",
			contains: []string{
				`main -. "goto top" .-> main`,
			},
		},
		{
			name: "cond branches",
			doc: `
sections:
  main:
    - cond:
        when: vars.vip
        then:
          - transfer:
              dest: vip
        else:
          - execute:
              dest: queue
  vip: []
  queue: []
`,
			contains: []string{
				`main -- "when vars.vip" --> vip`,
				`main -- "else" --> queue`,
			},
		},
		{
			name: "switch inside prompt result",
			doc: `
sections:
  main:
    - prompt:
        play: say:Press 1
        result:
          switch:
            variable: prompt_value
            case:
              "1":
                - execute:
                    dest: sales
            default:
              - goto:
                  label: again
  sales: []
`,
			contains: []string{
				`main -- "prompt / prompt_value = 1" --> sales`,
				`main -. "goto again" .-> main`,
			},
		},
		{
			name: "quotes are escaped",
			doc: `
sections:
  main:
    - cond:
        when: vars.name == "bob"
        then:
          - execute:
              dest: bob
  bob: []
`,
			contains: []string{
				`main -- "when vars.name == 'bob'" --> bob`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := graph.GenerateMermaid(decode(t, tt.doc))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestGenerateMermaidDeduplicatesEdges(t *testing.T) {
	out, err := graph.GenerateMermaid(decode(t, `
sections:
  main:
    - execute: {dest: sub}
    - execute: {dest: sub}
  sub: []
`))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "main --> sub"))
}

func TestGenerateMermaidRequiresSections(t *testing.T) {
	_, err := graph.GenerateMermaid(decode(t, "version: 1.0.0\n"))
	assert.ErrorIs(t, err, graph.ErrNoSections)

	_, err = graph.GenerateMermaid(decode(t, "sections: []\n"))
	assert.ErrorIs(t, err, graph.ErrNoSections)
}

func TestAnalyze(t *testing.T) {
	flow, err := graph.Analyze(decode(t, `
sections:
  main:
    - execute: {dest: menu}
    - transfer: {dest: https://example.com/x.json}
  menu:
    - goto: {label: top}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "menu"}, flow.Sections)
	assert.Equal(t, []graph.Edge{
		{From: "main", To: "menu"},
		{From: "main", To: "https://example.com/x.json", Label: "transfer", External: true},
		{From: "menu", To: "menu", Label: "goto top", Dotted: true},
	}, flow.Edges)
}
