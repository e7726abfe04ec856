package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/rwx-cloud/justify/internal/logging"
	"github.com/rwx-cloud/justify/internal/text"
	"github.com/rwx-cloud/justify/internal/versions"
)

func Serve(ctx context.Context, config ServerConfig) error {
	return NewServer(config).Run(ctx, &mcp.StdioTransport{})
}

type Server struct {
	ms     *mcp.Server
	logger *zap.SugaredLogger
}

type ServerConfig struct {
	Logger *zap.SugaredLogger
}

func NewServer(config ServerConfig) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "justify-mcp-server",
		Version: versions.GetCliCurrentVersion().String(),
	}, nil)

	logger := config.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	server := &Server{ms: mcpServer, logger: logger}
	server.addTools()

	return server
}

func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.ms.Run(ctx, transport)
}

func (s *Server) addTools() {
	mcp.AddTool(s.ms, &mcp.Tool{
		Name: "justify_text",
		Description: `Reflow text into fully justified lines of an exact width.

Words are separated by spaces; runs of spaces collapse. Every line, including the
last one, is padded with spaces to exactly "width" bytes. Extra spaces go to the
leftmost gaps first and a line holding a single word is padded on the right.

Width is measured in bytes, so multi-byte characters count more than once. The
call fails when a single word is longer than the width.`,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint: true,
		},
	}, s.justifyText)
}

type JustifyTextInput struct {
	Text  string `json:"text" jsonschema:"The text to justify"`
	Width int    `json:"width" jsonschema:"The exact width of every output line, in bytes"`
}

func (s *Server) justifyText(ctx context.Context, req *mcp.CallToolRequest, input JustifyTextInput) (*mcp.CallToolResult, any, error) {
	justified, err := text.Transform(text.Prepare(input.Text, text.PrepareOptions{}), input.Width)
	if err != nil {
		s.logger.Debugw("unable to justify text", "width", input.Width, "error", err)
		return nil, nil, err
	}

	return mcpToolTextResult(justified), nil, nil
}

func mcpToolTextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: text,
			},
		},
	}
}
