// ABOUTME: MCP server exposing the muscle-gain and body-fat calculators.
// ABOUTME: Stateless; every tool call is an independent calculation.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Version is reported in the MCP implementation info.
const Version = "1.0.0"

// Server wraps the MCP server with a diagnostic logger.
type Server struct {
	mcpServer *mcp.Server
	logger    *zap.Logger
}

// NewServer creates a new MCP server. A nil logger disables logging.
func NewServer(logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gains",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", zap.String("transport", "stdio"))
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
