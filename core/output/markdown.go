package output

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tech-verdict/core/types"
)

// AttributeTitle turns an attribute key such as "learning_curve" into "Learning Curve"
func AttributeTitle(key string) string {
	// a Caser keeps state between calls, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// MarkdownFormatter renders a GitHub-flavored markdown report
type MarkdownFormatter struct{}

func (MarkdownFormatter) Format() Format { return FormatMarkdown }

func (MarkdownFormatter) Render(w io.Writer, report *Report) error {
	_, err := io.WriteString(w, markdown(report))
	return err
}

func markdown(report *Report) string {
	var b strings.Builder
	c := report.Comparison

	b.WriteString("# Technology Comparison\n\n")
	if report.Input != "" {
		fmt.Fprintf(&b, "> %s\n\n", report.Input)
	}
	if report.Fallback {
		b.WriteString("_Some options are not in the knowledge base; scores are generic estimates._\n\n")
	}

	if len(c.Requirements) > 0 {
		b.WriteString("## Requirements\n\n")
		b.WriteString("| Constraint | Value | Category | Weight |\n|---|---|---|---:|\n")
		for _, r := range c.Requirements {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f |\n", cell(r.Name), cell(r.Value.String()), r.Category, r.Weight)
		}
		b.WriteString("\n")
	}

	if len(c.Options) > 0 {
		b.WriteString("## Scores\n\n")
		writeScoreTable(&b, c.Options)
	}

	for _, opt := range c.Options {
		fmt.Fprintf(&b, "### %s\n\n", opt.Name)
		if opt.BestFor != "" {
			fmt.Fprintf(&b, "- **Best for:** %s\n", opt.BestFor)
		}
		if opt.WorstFor != "" {
			fmt.Fprintf(&b, "- **Worst for:** %s\n", opt.WorstFor)
		}
		if len(opt.Tradeoffs) > 0 {
			b.WriteString("\n| Benefit | Cost | Confidence |\n|---|---|---|\n")
			for _, t := range opt.Tradeoffs {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(t.Benefit), cell(t.Cost), t.Confidence)
			}
		}
		b.WriteString("\n")
	}

	if c.NextQuestion != "" {
		fmt.Fprintf(&b, "## Next Question\n\n%s\n\n", c.NextQuestion)
	}
	if len(c.ClarifyingQuestions) > 0 {
		b.WriteString("## Clarifying Questions\n\n")
		for i, q := range c.ClarifyingQuestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
		b.WriteString("\n")
	}
	if report.DecisionPath != "" {
		fmt.Fprintf(&b, "## Decision Path\n\n```\n%s\n```\n", strings.TrimRight(report.DecisionPath, "\n"))
	}
	return b.String()
}

// writeScoreTable writes one row per attribute and one column per option
func writeScoreTable(b *strings.Builder, options []types.OptionScore) {
	seen := make(map[string]bool)
	var keys []string
	for _, opt := range options {
		for k := range opt.Scores {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	b.WriteString("| Attribute |")
	for _, opt := range options {
		fmt.Fprintf(b, " %s |", cell(opt.Name))
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---:|", len(options)))
	b.WriteString("\n")

	for _, k := range keys {
		fmt.Fprintf(b, "| %s |", AttributeTitle(k))
		for _, opt := range options {
			if v, ok := opt.Scores[k]; ok {
				fmt.Fprintf(b, " %.2f |", v)
			} else {
				b.WriteString(" - |")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// cell escapes pipes so text stays inside its table cell
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// HTMLFormatter renders the markdown report as a standalone HTML page
type HTMLFormatter struct{}

func (HTMLFormatter) Format() Format { return FormatHTML }

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
pre { background: #f6f8fa; padding: 1rem; }
</style>
</head>
<body>
`

func (HTMLFormatter) Render(w io.Writer, report *Report) error {
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown(report)), &body); err != nil {
		return err
	}

	title := "Technology Comparison"
	if names := types.OptionNames(report.Comparison.Options); len(names) > 0 {
		title += ": " + strings.Join(names, " vs ")
	}

	if _, err := fmt.Fprintf(w, htmlHead, html.EscapeString(title)); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
