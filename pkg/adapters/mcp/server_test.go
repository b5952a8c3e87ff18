package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/domain"
	"github.com/aretw0/swml/pkg/registry"
	"github.com/aretw0/swml/pkg/schema"
)

func newTestServer() *Server {
	reg := registry.NewRegistry()
	reg.Register("hello", func(_ context.Context, params map[string]string) (*swml.Document, error) {
		doc := swml.New()
		doc.AddSection("main").Append(domain.Play{URL: domain.Ptr("say:" + params["text"])})
		return doc, nil
	})
	return NewServer(reg)
}

func TestValidateTool(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	resp, err := s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Document: `{"sections":{"main":["answer"]}}`})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)

	resp, err = s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{
		Document: "sections:\n  main:\n    - play:\n        volume: loud\n",
		Format:   "yaml",
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "sections.main[0].play")

	resp, err = s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Document: `{`})
	require.NoError(t, err)
	assert.False(t, resp.Valid)

	_, err = s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Document: `{}`, Format: "xml"})
	assert.Error(t, err)
}

func TestConvertTool(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleConvert(context.Background(), mcp.CallToolRequest{}, ConvertArgs{
		Document: `{"sections":{"main":["answer"]}}`,
		To:       "yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "yaml", resp.Format)
	assert.Equal(t, "sections:\n  main:\n    - answer\n", resp.Document)

	_, err = s.handleConvert(context.Background(), mcp.CallToolRequest{}, ConvertArgs{Document: `{}`})
	assert.Error(t, err)
}

func TestRenderTool(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleRender(context.Background(), mcp.CallToolRequest{}, RenderArgs{
		Name:   "hello",
		Params: map[string]string{"text": "hi"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections":{"main":[{"play":{"url":"say:hi"}}]}}`, resp.Document)

	_, err = s.handleRender(context.Background(), mcp.CallToolRequest{}, RenderArgs{Name: "missing"})
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Contains(t, err.Error(), "available: hello")
}

func TestListTool(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleList(context.Background(), mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, resp.Documents)
	assert.Len(t, resp.Instructions, len(domain.Verbs()))
}

func TestCatalogueResource(t *testing.T) {
	s := newTestServer()

	contents, err := s.readCatalogue(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogueURI, text.URI)

	var infos []schema.VerbInfo
	require.NoError(t, json.Unmarshal([]byte(text.Text), &infos))
	assert.Equal(t, domain.Verbs()[0], infos[0].Verb)
}
