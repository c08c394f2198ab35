// Package report renders analysis results as plain text. Rendering is
// deterministic: the same inventory and summary always produce the same
// bytes.
package report

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hexlane/woostack/internal/models"
)

// Render produces the technical report for one target. Verbose adds the
// evidence snippet behind each match.
func Render(inv *models.Inventory, facts *models.PageFacts, verbose bool) string {
	var b strings.Builder

	b.WriteString("WooCommerce Site Analysis\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Target:         %s\n", inv.Target)
	fmt.Fprintf(&b, "Pages analyzed: %d\n", inv.PagesAnalyzed)
	if facts != nil && facts.Generator != "" {
		fmt.Fprintf(&b, "Generator:      %s\n", facts.Generator)
	}

	if inv.Len() == 0 {
		b.WriteString("\nNo known plugins/themes detected.\n")
	} else {
		renderMatches(&b, inv, verbose)
	}

	if facts != nil {
		renderFacts(&b, facts)
	}

	return b.String()
}

func renderMatches(b *strings.Builder, inv *models.Inventory, verbose bool) {
	if plugins := inv.Plugins(); len(plugins) > 0 {
		b.WriteString("\nDetected plugins:\n")
		for _, record := range plugins {
			writeRecord(b, record, verbose)
		}
	}

	if themes := inv.Themes(); len(themes) > 0 {
		b.WriteString("\nDetected theme:\n")
		if main := inv.MainTheme(); main != "" {
			fmt.Fprintf(b, "- Main theme: %s\n", main)
		}
		if child := inv.ChildTheme(); child != "" {
			fmt.Fprintf(b, "- Child theme: %s\n", child)
		}
		if verbose {
			for _, record := range themes {
				if record.Evidence != "" {
					fmt.Fprintf(b, "  %s: %s\n", record.Name, record.Evidence)
				}
			}
		}
	}
}

func writeRecord(b *strings.Builder, record models.MatchRecord, verbose bool) {
	if record.Description != "" {
		fmt.Fprintf(b, "- %s - %s\n", record.Name, record.Description)
	} else {
		fmt.Fprintf(b, "- %s\n", record.Name)
	}
	if verbose && record.Evidence != "" {
		fmt.Fprintf(b, "  found in: %s\n", record.Evidence)
	}
}

func renderFacts(b *strings.Builder, facts *models.PageFacts) {
	writeList(b, "Gutenberg blocks", facts.Blocks())
	writeList(b, "Shortcodes", facts.Shortcodes())
	writeList(b, "REST routes", facts.RestRoutes())
	writeList(b, "AJAX actions", facts.AjaxActions())
	writeList(b, "Custom post types", facts.PostTypes())
	writeList(b, "Custom data attributes", facts.DataAttributes())
}

func writeList(b *strings.Builder, heading string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, value := range values {
		fmt.Fprintf(b, "- %s\n", value)
	}
}

// AppendSummary attaches the AI stage outcome below the technical
// report. Skipped and failed stages are stated explicitly so the reader
// knows why no recommendation is present.
func AppendSummary(technicalReport string, summary models.Summary) string {
	var b strings.Builder
	b.WriteString(technicalReport)
	b.WriteString("\nAI Interpretation\n")
	b.WriteString("=================\n")

	switch summary.Status {
	case models.SummaryDone:
		b.WriteString(summary.Recommendation)
		b.WriteString("\n")
	case models.SummarySkipped:
		b.WriteString("Skipped: no provider API key configured.\n")
	case models.SummaryFailed:
		fmt.Fprintf(&b, "Failed: %v\n", summary.Err)
	}

	return b.String()
}

// Filename derives a save path for a report from the target host.
func Filename(target string, now time.Time) string {
	host := target
	if parsed, err := url.Parse(target); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	host = strings.ReplaceAll(host, ":", "_")
	return fmt.Sprintf("woostack_%s_%d.txt", host, now.Unix())
}

// WriteFile saves a rendered report.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
