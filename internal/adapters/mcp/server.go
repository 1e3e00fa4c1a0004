// Package mcp exposes the explorer as a Model Context Protocol server so
// agents can render gates as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const gatesURI = "bloch://gates"

// Engine defines the interface required by the MCP server.
type Engine interface {
	Render(ctx context.Context, req bloch.Request) (*bloch.Scene, error)
	Catalog() []gate.Entry
}

// GateResult is the structured output of the render_gate tool.
type GateResult struct {
	Gate        string            `json:"gate" jsonschema_description:"Gate symbol"`
	Name        string            `json:"name" jsonschema_description:"Display name of the gate"`
	Description string            `json:"description" jsonschema_description:"What the gate does"`
	Projection  string            `json:"projection" jsonschema_description:"Projection used for the Bloch vector"`
	Amplitudes  []qubit.Amplitude `json:"amplitudes" jsonschema_description:"Amplitudes of |0> and |1> after the gate"`
	Vector      qubit.Vector      `json:"vector" jsonschema_description:"Bloch vector coordinates"`
	Circuit     string            `json:"circuit" jsonschema_description:"Text circuit diagram"`
}

type renderArgs struct {
	Gate       string `json:"gate"`
	Projection string `json:"projection,omitempty"`
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine: engine,
		mcpServer: server.NewMCPServer("bloch-mcp", strings.TrimSpace(bloch.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx
// is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
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

func symbols() []string {
	all := gate.All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}
	return out
}

func projections() []string {
	all := qubit.Projections()
	out := make([]string, len(all))
	for i, p := range all {
		out[i] = string(p)
	}
	return out
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_gate",
		mcp.WithDescription("Apply a single-qubit gate to |0> and return the resulting state and Bloch vector."),
		mcp.WithString("gate", mcp.Required(), mcp.Enum(symbols()...), mcp.Description("Gate symbol")),
		mcp.WithString("projection", mcp.Enum(projections()...), mcp.Description("Bloch projection (default: server setting)")),
		mcp.WithOutputSchema[GateResult](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRenderGate))

	s.mcpServer.AddTool(mcp.NewTool("list_gates",
		mcp.WithDescription("List the available gates with their descriptions."),
	), s.handleListGates)
}

func (s *Server) handleRenderGate(ctx context.Context, request mcp.CallToolRequest, args renderArgs) (GateResult, error) {
	sym, err := gate.Parse(args.Gate)
	if err != nil {
		return GateResult{}, err
	}
	req := bloch.Request{Gate: sym, SkipImage: true}
	if args.Projection != "" {
		p, err := qubit.ParseProjection(args.Projection)
		if err != nil {
			return GateResult{}, err
		}
		req.Projection = p
	}

	scene, err := s.engine.Render(ctx, req)
	if err != nil {
		slog.Error("MCP render_gate failed", "gate", sym, "err", err)
		return GateResult{}, fmt.Errorf("render failed: %w", err)
	}

	return GateResult{
		Gate:        scene.Gate.String(),
		Name:        scene.Name,
		Description: scene.Description,
		Projection:  string(scene.Projection),
		Amplitudes:  scene.State.Amplitudes(),
		Vector:      scene.Vector,
		Circuit:     scene.Circuit,
	}, nil
}

func (s *Server) handleListGates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(s.engine.Catalog())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(gatesURI, "Gate Catalog",
		mcp.WithResourceDescription("All gates offered by the explorer"),
		mcp.WithMIMEType("application/json"),
	), s.readGates)
}

func (s *Server) readGates(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(s.engine.Catalog())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      gatesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
