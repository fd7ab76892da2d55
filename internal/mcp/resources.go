// ABOUTME: MCP resource implementations.
// ABOUTME: Provides gains://options with the option labels and step tables.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/gains/internal/calc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const optionsURI = "gains://options"

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         optionsURI,
		Name:        "Calculator Options",
		Description: "Accepted workout, diet and genetics options with multipliers, and the age and training-age factor tables",
		MIMEType:    "application/json",
	}, s.handleOptionsResource)
}

func (s *Server) handleOptionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(calc.Options(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      optionsURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
