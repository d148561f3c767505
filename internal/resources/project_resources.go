package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/todoist-mcp/internal/server"
	"github.com/teemow/todoist-mcp/internal/todoist"
)

// RegisterProjectResources registers resources exposing the account's
// Todoist projects so clients can resolve project IDs for task filters.
func RegisterProjectResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	projectsResource := mcp.NewResource(
		"todoist://projects",
		"Todoist Projects",
		mcp.WithResourceDescription("All projects of the configured Todoist account"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(projectsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleProjects(ctx, request, sc)
	})

	return nil
}

// handleProjects returns the project list as a JSON resource
func handleProjects(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	if sc.IsShutdown() {
		return nil, fmt.Errorf("server is shutting down")
	}

	client := todoist.NewClient()
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	jsonData, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
