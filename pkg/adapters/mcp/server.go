// Package mcp exposes the SWML toolchain as a Model Context Protocol server.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/swml"
	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/registry"
	"github.com/aretw0/swml/pkg/schema"
)

// CatalogueURI is the resource listing every known instruction.
const CatalogueURI = "swml://catalogue"

// ValidateArgs are the arguments of validate_swml.
type ValidateArgs struct {
	Document string `json:"document"`
	Format   string `json:"format,omitempty"`
}

// ValidateResponse reports the outcome of validate_swml.
type ValidateResponse struct {
	Valid  bool     `json:"valid" jsonschema_description:"Whether the document passed validation"`
	Errors []string `json:"errors" jsonschema_description:"One entry per failing field"`
}

// ConvertArgs are the arguments of convert_swml.
type ConvertArgs struct {
	Document string `json:"document"`
	From     string `json:"from,omitempty"`
	To       string `json:"to"`
}

// RenderArgs are the arguments of render_document.
type RenderArgs struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
	Format string            `json:"format,omitempty"`
}

// DocumentResponse carries a rendered document.
type DocumentResponse struct {
	Format   string `json:"format" jsonschema_description:"json or yaml"`
	Document string `json:"document" jsonschema_description:"The rendered document"`
}

// CatalogueResponse lists the instructions and registered documents.
type CatalogueResponse struct {
	Instructions []schema.VerbInfo `json:"instructions"`
	Documents    []string          `json:"documents"`
}

// Server wraps an MCP server bound to a document registry.
type Server struct {
	registry  *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server serving the documents in reg.
func NewServer(reg *registry.Registry) *Server {
	if reg == nil {
		reg = registry.NewRegistry()
	}
	s := &Server{
		registry:  reg,
		mcpServer: server.NewMCPServer("swml-mcp", strings.TrimSpace(swml.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio serves on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over Server-Sent Events until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("validate_swml",
		mcp.WithDescription("Validate an SWML document against the instruction catalogue."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The document text")),
		mcp.WithString("format", mcp.Enum("json", "yaml"), mcp.Description("Document format (default json)")),
		mcp.WithOutputSchema[ValidateResponse](),
	), mcp.NewStructuredToolHandler(s.handleValidate))

	s.mcpServer.AddTool(mcp.NewTool("convert_swml",
		mcp.WithDescription("Convert an SWML document between JSON and YAML, keeping key order."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The document text")),
		mcp.WithString("from", mcp.Enum("json", "yaml"), mcp.Description("Source format (default json)")),
		mcp.WithString("to", mcp.Required(), mcp.Enum("json", "yaml"), mcp.Description("Target format")),
		mcp.WithOutputSchema[DocumentResponse](),
	), mcp.NewStructuredToolHandler(s.handleConvert))

	s.mcpServer.AddTool(mcp.NewTool("render_document",
		mcp.WithDescription("Build a registered document and render it."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Registered document name")),
		mcp.WithObject("params", mcp.Description("String parameters passed to the document builder")),
		mcp.WithString("format", mcp.Enum("json", "yaml"), mcp.Description("Output format (default json)")),
		mcp.WithOutputSchema[DocumentResponse](),
	), mcp.NewStructuredToolHandler(s.handleRender))

	s.mcpServer.AddTool(mcp.NewTool("list_instructions",
		mcp.WithDescription("List every SWML instruction with its fields, and the registered documents."),
		mcp.WithOutputSchema[CatalogueResponse](),
	), mcp.NewStructuredToolHandler(s.handleList))
}

func formatOr(s string, fallback codec.Format) (codec.Format, error) {
	if s == "" {
		return fallback, nil
	}
	return codec.ParseFormat(s)
}

func (s *Server) handleValidate(_ context.Context, _ mcp.CallToolRequest, args ValidateArgs) (ValidateResponse, error) {
	f, err := formatOr(args.Format, codec.JSON)
	if err != nil {
		return ValidateResponse{}, err
	}
	tree, err := codec.Decode([]byte(args.Document), f)
	if err != nil {
		return ValidateResponse{Errors: []string{err.Error()}}, nil
	}

	resp := ValidateResponse{Valid: true, Errors: []string{}}
	if err := schema.ValidateDocument(tree); err != nil {
		resp.Valid = false
		errs := schema.ValidationErrors(err)
		if errs == nil {
			errs = []error{err}
		}
		for _, e := range errs {
			resp.Errors = append(resp.Errors, e.Error())
		}
	}
	return resp, nil
}

func (s *Server) handleConvert(_ context.Context, _ mcp.CallToolRequest, args ConvertArgs) (DocumentResponse, error) {
	from, err := formatOr(args.From, codec.JSON)
	if err != nil {
		return DocumentResponse{}, err
	}
	to, err := codec.ParseFormat(args.To)
	if err != nil {
		return DocumentResponse{}, err
	}
	out, err := codec.Convert([]byte(args.Document), from, to)
	if err != nil {
		return DocumentResponse{}, err
	}
	return DocumentResponse{Format: string(to), Document: string(out)}, nil
}

func (s *Server) handleRender(ctx context.Context, _ mcp.CallToolRequest, args RenderArgs) (DocumentResponse, error) {
	f, err := formatOr(args.Format, codec.JSON)
	if err != nil {
		return DocumentResponse{}, err
	}
	doc, err := s.registry.Build(ctx, args.Name, args.Params)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return DocumentResponse{}, fmt.Errorf("%w (available: %s)", err, strings.Join(s.registry.Names(), ", "))
		}
		return DocumentResponse{}, err
	}

	var buf strings.Builder
	if err := doc.Render(&buf, f); err != nil {
		return DocumentResponse{}, err
	}
	return DocumentResponse{Format: string(f), Document: buf.String()}, nil
}

func (s *Server) handleList(_ context.Context, _ mcp.CallToolRequest, _ map[string]any) (CatalogueResponse, error) {
	return CatalogueResponse{Instructions: schema.Describe(), Documents: s.registry.Names()}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogueURI, "SWML instruction catalogue",
		mcp.WithMIMEType("application/json"),
	), s.readCatalogue)
}

func (s *Server) readCatalogue(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(schema.Describe())
	if err != nil {
		return nil, fmt.Errorf("encode catalogue: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogueURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
