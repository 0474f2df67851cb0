// Package mcptools exposes the decision pipeline as MCP tools over stdio.
//
// Each tool follows the same pattern:
// - A struct with the orchestrator injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tech-verdict/core/orchestrator"
	"tech-verdict/core/parser"
	"tech-verdict/core/steering"
)

// NewServer creates an MCP server with every tool registered
func NewServer(orch *orchestrator.Orchestrator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"tech-verdict",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	parse := NewParseTool()
	s.AddTool(parse.Definition(), parse.Handle)

	compare := NewCompareTool(orch)
	s.AddTool(compare.Definition(), compare.Handle)

	path := NewDecisionPathTool(orch)
	s.AddTool(path.Definition(), path.Handle)

	return s
}

// Serve runs the server on stdin/stdout until the client disconnects
func Serve(orch *orchestrator.Orchestrator, version string) error {
	return server.ServeStdio(NewServer(orch, version))
}

// ParseTool handles the parse_constraints tool
type ParseTool struct {
	parser *parser.Parser
}

// NewParseTool creates a ParseTool
func NewParseTool() *ParseTool {
	return &ParseTool{parser: parser.New()}
}

// Definition returns the MCP tool definition for parse_constraints
func (t *ParseTool) Definition() mcp.Tool {
	return mcp.NewTool("parse_constraints",
		mcp.WithDescription("Extract weighted constraints (budget, performance, scalability, team, operational) from free text."),
		mcp.WithString("constraints",
			mcp.Required(),
			mcp.Description("Free-text requirements, e.g. '5 person startup, low budget'"),
		),
	)
}

// Handle processes the parse_constraints tool call
func (t *ParseTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := strings.TrimSpace(req.GetString("constraints", ""))
	if input == "" {
		return mcp.NewToolResultError("'constraints' is required"), nil
	}
	return jsonResult(t.parser.Parse(input))
}

// CompareTool handles the compare_options tool
type CompareTool struct {
	orch *orchestrator.Orchestrator
}

// NewCompareTool creates a CompareTool
func NewCompareTool(orch *orchestrator.Orchestrator) *CompareTool {
	return &CompareTool{orch: orch}
}

// Definition returns the MCP tool definition for compare_options
func (t *CompareTool) Definition() mcp.Tool {
	return mcp.NewTool("compare_options",
		mcp.WithDescription("Score technology options against constraints and return trade-offs plus the next question to consider."),
		mcp.WithString("constraints",
			mcp.Required(),
			mcp.Description("Free-text requirements"),
		),
		mcp.WithString("options",
			mcp.Required(),
			mcp.Description("Comma-separated technology names, at least two (e.g. 'Lambda, EC2')"),
		),
	)
}

// Handle processes the compare_options tool call
func (t *CompareTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, options, errResult := comparisonArgs(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(t.orch.Orchestrate(input, options))
}

// DecisionPathTool handles the decision_path tool
type DecisionPathTool struct {
	orch *orchestrator.Orchestrator
}

// NewDecisionPathTool creates a DecisionPathTool
func NewDecisionPathTool(orch *orchestrator.Orchestrator) *DecisionPathTool {
	return &DecisionPathTool{orch: orch}
}

// Definition returns the MCP tool definition for decision_path
func (t *DecisionPathTool) Definition() mcp.Tool {
	return mcp.NewTool("decision_path",
		mcp.WithDescription("Render a plain-text decision path: which options survive the hard constraints and their key trade-offs."),
		mcp.WithString("constraints",
			mcp.Required(),
			mcp.Description("Free-text requirements"),
		),
		mcp.WithString("options",
			mcp.Required(),
			mcp.Description("Comma-separated technology names, at least two"),
		),
	)
}

// Handle processes the decision_path tool call
func (t *DecisionPathTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, options, errResult := comparisonArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	result := t.orch.Run(input, options)
	if result.Fallback() {
		return mcp.NewToolResultError(fmt.Sprintf("cannot build a decision path: %v", result.Err)), nil
	}
	c := result.Comparison
	return mcp.NewToolResultText(steering.DecisionPath(c.Options, c.Requirements)), nil
}

// SplitOptions splits a comma-separated list, dropping empty entries
func SplitOptions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func comparisonArgs(req mcp.CallToolRequest) (string, []string, *mcp.CallToolResult) {
	input := strings.TrimSpace(req.GetString("constraints", ""))
	if input == "" {
		return "", nil, mcp.NewToolResultError("'constraints' is required")
	}
	options := SplitOptions(req.GetString("options", ""))
	if len(options) < 2 {
		return "", nil, mcp.NewToolResultError("'options' needs at least two comma-separated names")
	}
	return input, options, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
