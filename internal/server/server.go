package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/averycrespi/gocalc/internal/history"
	"github.com/averycrespi/gocalc/internal/tools"
	"github.com/averycrespi/gocalc/pkg/project"
	"github.com/averycrespi/gocalc/pkg/types"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer exposes the calculator as MCP tools over stdio.
// All tool calls share one history for the lifetime of the server.
type CalcServer struct {
	mcpServer *server.MCPServer
	history   *history.History
	config    *types.Config
	sessionID string
	stdin     io.Reader
	stdout    io.Writer
}

// NewCalcServer creates a new calculator MCP server reading requests from stdin and writing responses to stdout
func NewCalcServer(config *types.Config, stdin io.Reader, stdout io.Writer) *CalcServer {
	s := &CalcServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version, server.WithToolCapabilities(false)),
		history:   history.New(),
		config:    config,
		sessionID: uuid.NewString(),
		stdin:     stdin,
		stdout:    stdout,
	}
	s.registerTools()
	return s
}

// Start serves MCP requests until ctx is cancelled or stdin is closed
func (s *CalcServer) Start(ctx context.Context) error {
	logger := slog.Default().With("session_id", s.sessionID)
	logger.Info("Starting calculator MCP server", "config", fmt.Sprintf("%+v", *s.config))

	stdioServer := server.NewStdioServer(s.mcpServer)
	stdioServer.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	logger.Info("Calculator MCP server stopped", "calculations", s.history.Len())
	return nil
}

// History returns the history shared by all tool calls
func (s *CalcServer) History() *history.History {
	return s.history
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool(s.history)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	historyTool := tools.NewHistoryTool(s.history)
	s.mcpServer.AddTool(historyTool.GetTool(), historyTool.Handle)

	listOperationsTool := tools.NewListOperationsTool()
	s.mcpServer.AddTool(listOperationsTool.GetTool(), listOperationsTool.Handle)
}
