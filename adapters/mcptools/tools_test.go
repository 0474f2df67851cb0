package mcptools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"tech-verdict/core/orchestrator"
	"tech-verdict/core/types"
)

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func newOrchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(nil, nil)
}

func TestDefinitions(t *testing.T) {
	orch := newOrchestrator()
	tests := []struct {
		def      mcp.Tool
		name     string
		required []string
	}{
		{NewParseTool().Definition(), "parse_constraints", []string{"constraints"}},
		{NewCompareTool(orch).Definition(), "compare_options", []string{"constraints", "options"}},
		{NewDecisionPathTool(orch).Definition(), "decision_path", []string{"constraints", "options"}},
	}

	for _, tt := range tests {
		if tt.def.Name != tt.name {
			t.Errorf("tool name = %q, want %q", tt.def.Name, tt.name)
		}
		for _, r := range tt.required {
			if _, ok := tt.def.InputSchema.Properties[r]; !ok {
				t.Errorf("%s: missing %q parameter", tt.name, r)
			}
			found := false
			for _, req := range tt.def.InputSchema.Required {
				if req == r {
					found = true
				}
			}
			if !found {
				t.Errorf("%s: %q should be required", tt.name, r)
			}
		}
	}
}

func TestParseTool(t *testing.T) {
	tool := NewParseTool()

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"constraints": "low budget, fast",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}

	var parsed types.ParsedConstraints
	if err := json.Unmarshal([]byte(resultText(res)), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(parsed.Constraints) != 2 {
		t.Errorf("expected 2 constraints, got %d", len(parsed.Constraints))
	}

	res, _ = tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if !res.IsError {
		t.Error("expected error for missing constraints")
	}
}

func TestCompareTool(t *testing.T) {
	tool := NewCompareTool(newOrchestrator())

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"constraints": "small team, low budget",
		"options":     "Lambda, EC2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result types.ComparisonResult
	if err := json.Unmarshal([]byte(resultText(res)), &result); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(result.Options) != 2 || result.Options[0].Name != "AWS Lambda" {
		t.Errorf("unexpected options: %v", types.OptionNames(result.Options))
	}
	if result.NextQuestion == "" {
		t.Error("expected a next question")
	}
}

func TestCompareToolValidation(t *testing.T) {
	tool := NewCompareTool(newOrchestrator())

	tests := []map[string]interface{}{
		{"options": "Lambda, EC2"},
		{"constraints": "budget", "options": "Lambda"},
		{"constraints": "budget", "options": " , ,"},
	}
	for _, args := range tests {
		res, _ := tool.Handle(context.Background(), makeReq(args))
		if !res.IsError {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestDecisionPathTool(t *testing.T) {
	tool := NewDecisionPathTool(newOrchestrator())

	res, _ := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"constraints": "team",
		"options":     "PostgreSQL,MongoDB",
	}))
	text := resultText(res)
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", text)
	}
	if !strings.HasPrefix(text, "DECISION PATH:") || !strings.Contains(text, "KEY TRADE-OFFS:") {
		t.Errorf("unexpected report:\n%s", text)
	}

	res, _ = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"constraints": "team",
		"options":     "PostgreSQL,Oracle",
	}))
	if !res.IsError || !strings.Contains(resultText(res), "Oracle") {
		t.Errorf("expected unknown technology error, got %q", resultText(res))
	}
}

func TestSplitOptions(t *testing.T) {
	got := SplitOptions(" Lambda, ,EC2 ,Fargate,")
	want := []string{"Lambda", "EC2", "Fargate"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer(newOrchestrator(), "test"); s == nil {
		t.Fatal("expected server")
	}
}
