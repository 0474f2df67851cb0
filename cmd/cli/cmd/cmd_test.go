package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-verdict/core/output"
	"tech-verdict/core/parser"
	"tech-verdict/core/types"
)

// run executes the root command with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AI_PROVIDER", "claude")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		compareOptions = nil
		outputFormat = ""
		showDecisionPath = false
		showTradeoffSummary = false
		parseFormat = "cli"
		parseHints = nil
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, "compare", "-o", "lambda,ec2", "-f", "json", "-d", "low", "budget")
	require.NoError(t, err)

	var report output.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "low budget", report.Input)
	assert.Equal(t, []string{"AWS Lambda", "AWS EC2"}, types.OptionNames(report.Comparison.Options))
	assert.NotEmpty(t, report.DecisionPath)
	assert.False(t, report.Fallback)
}

func TestCompareNeedsTwoOptions(t *testing.T) {
	_, err := run(t, "compare", "-o", "lambda", "budget")
	assert.Error(t, err)
}

func TestCompareSummary(t *testing.T) {
	out, err := run(t, "compare", "-o", "postgresql,mongodb", "--summary", "scalability")
	require.NoError(t, err)
	assert.Contains(t, out, "PostgreSQL:\n  • ")
	assert.Contains(t, out, "MongoDB:\n  • ")
}

func TestParseJSON(t *testing.T) {
	out, err := run(t, "parse", "-f", "json", "budget performance scalability")
	require.NoError(t, err)

	var parsed types.ParsedConstraints
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Len(t, parsed.Constraints, 3)
}

func TestCatalogShow(t *testing.T) {
	out, err := run(t, "catalog", "--no-color", "lambda")
	require.NoError(t, err)
	assert.Contains(t, out, "AWS Lambda")
	assert.Contains(t, out, "Operational Overhead")

	_, err = run(t, "catalog", "kubernetes")
	assert.Error(t, err)
}

func TestCompareHelpListsParserKeywords(t *testing.T) {
	for _, kw := range parser.Keywords() {
		assert.Contains(t, compareCmd.Long, kw)
	}
	assert.NotContains(t, compareCmd.Long, "engineers")
	assert.NotContains(t, compareCmd.Long, "%s")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tech-verdict version "+Version+"\n", out)
}
