package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/netdata-mcp/internal/toolreg"
)

// registerTools exposes every catalogue entry as an MCP tool. All handlers
// share one dispatch path; any dispatch error becomes an "Error: ..." text
// result, so a tool call can never kill the process.
func registerTools(server *mcp.Server, registry *toolreg.Registry) {
	for _, t := range registry.List() {
		server.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return dispatch(ctx, registry, req), nil
		})
	}
}

func dispatch(ctx context.Context, registry *toolreg.Registry, req *mcp.CallToolRequest) *mcp.CallToolResult {
	params, ok := req.GetParams().(*mcp.CallToolParamsRaw)
	if !ok {
		return errorResult("invalid tool call parameters")
	}

	args := map[string]any{}
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return errorResult("invalid arguments: " + err.Error())
		}
	}

	call := uuid.NewString()[:8]
	start := time.Now()
	out, err := registry.Execute(ctx, params.Name, args)
	toolCalls.WithLabelValues(params.Name).Inc()
	toolDuration.WithLabelValues(params.Name).Observe(time.Since(start).Seconds())

	if err != nil {
		toolErrors.WithLabelValues(params.Name).Inc()
		slog.Warn("tool call failed",
			slog.String("call", call),
			slog.String("tool", params.Name),
			slog.Any("error", err))
		return errorResult(err.Error())
	}

	slog.Info("tool call",
		slog.String("call", call),
		slog.String("tool", params.Name),
		slog.Duration("took", time.Since(start)))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: out}},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + msg}},
		IsError: true,
	}
}
