package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tsfix/tsfix/internal/adapters/outbound/config"
	"github.com/tsfix/tsfix/internal/adapters/outbound/gitinfo"
	"github.com/tsfix/tsfix/internal/adapters/outbound/history"
	"github.com/tsfix/tsfix/internal/adapters/outbound/tsclog"
	"github.com/tsfix/tsfix/internal/application"
	"github.com/tsfix/tsfix/internal/domain"
)

// registerTools registers all tsfix MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. tsfix_summary
	s.AddTool(
		mcplib.NewTool("tsfix_summary",
			mcplib.WithDescription("Parse the tsc build log and return the diagnostic summary (total count, top codes, fixable unused identifiers) as JSON"),
			mcplib.WithString("log", mcplib.Description("Build log path, relative to the project root (defaults to .tsfix.yaml)")),
		),
		handleSummary(projectPath),
	)

	// 2. tsfix_diagnostics
	s.AddTool(
		mcplib.NewTool("tsfix_diagnostics",
			mcplib.WithDescription("Return the parsed diagnostics from the tsc build log, optionally filtered to one error code"),
			mcplib.WithString("code", mcplib.Description("Only return diagnostics with this code (e.g. TS6133)")),
			mcplib.WithString("log", mcplib.Description("Build log path, relative to the project root (defaults to .tsfix.yaml)")),
		),
		handleDiagnostics(projectPath),
	)

	// 3. tsfix_fix
	s.AddTool(
		mcplib.NewTool("tsfix_fix",
			mcplib.WithDescription("Apply unused-identifier fixes from the tsc build log to the project's source files and return the run report"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Compute edits without writing any file")),
			mcplib.WithString("log", mcplib.Description("Build log path, relative to the project root (defaults to .tsfix.yaml)")),
		),
		handleFix(projectPath),
	)
}

func handleSummary(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		logFile, _ := request.GetArguments()["log"].(string)

		svc := application.NewSummaryService(tsclog.New(), gitinfo.New())
		report, _, err := svc.Summarize(projectPath, cfg, logFile)
		if err != nil {
			return errorResult(fmt.Sprintf("summary failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleDiagnostics(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		args := request.GetArguments()
		logFile, _ := args["log"].(string)
		code, _ := args["code"].(string)

		svc := application.NewSummaryService(tsclog.New(), gitinfo.New())
		_, diags, err := svc.Summarize(projectPath, cfg, logFile)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing failed: %v", err)), nil
		}

		if code != "" {
			filtered := diags[:0]
			for _, d := range diags {
				if d.Code == code {
					filtered = append(filtered, d)
				}
			}
			diags = filtered
		}
		return jsonResult(diags)
	}
}

func handleFix(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)
		logFile, _ := args["log"].(string)

		svc := application.NewFixService(tsclog.New(), gitinfo.New(), history.New(), nil)

		opts := domain.FixOptions{
			LogFile: logFile,
			DryRun:  dryRun,
		}

		report, err := svc.Run(projectPath, cfg, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
