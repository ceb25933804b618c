// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/stacklyzer/internal/compare"
	"github.com/jonathan/stacklyzer/internal/fetch"
	"github.com/jonathan/stacklyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// bucketTitles names the report buckets in report order.
var bucketTitles = []string{
	"Frameworks", "Libraries", "Server-side", "Analytics",
	"CMS", "E-commerce", "Build tools", "Miscellaneous",
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintFetchSummary outputs what was retrieved for a page.
func (p *Printer) PrintFetchSummary(page *fetch.Result) {
	if page == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:      %s\n", page.URL))
	if page.FinalURL != "" && page.FinalURL != page.URL {
		sb.WriteString(fmt.Sprintf("Final:    %s\n", page.FinalURL))
	}
	sb.WriteString(fmt.Sprintf("Status:   %d %s\n", page.StatusCode, page.Status))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", page.ContentType))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes", len(page.HTML)))
	if page.Truncated {
		sb.WriteString(" (truncated)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Hash:     %016x", page.BodyHash))

	p.printBox("FETCHED PAGE", sb.String())
}

// PrintReport outputs the detected technologies grouped by bucket.
func (p *Printer) PrintReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:      %s\n", report.URL))
	sb.WriteString(fmt.Sprintf("Scanned:  %s\n", report.Meta.ScanTime))
	sb.WriteString(fmt.Sprintf("Found:    %d technologies\n", report.Summary.TotalTechnologies))

	for i, bucket := range report.Technologies.All() {
		if len(bucket) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", bucketTitles[i]))
		for _, rec := range bucket {
			sb.WriteString(fmt.Sprintf("  • %s [%s]\n", rec.Name, rec.Confidence))
			count := min(len(rec.DetectionDetails), 3)
			for j := 0; j < count; j++ {
				sb.WriteString(fmt.Sprintf("      %s\n", rec.DetectionDetails[j]))
			}
			if len(rec.DetectionDetails) > 3 {
				sb.WriteString(fmt.Sprintf("      ... and %d more\n", len(rec.DetectionDetails)-3))
			}
		}
	}

	p.printBox("DETECTED TECHNOLOGIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategories outputs the summary counts per category, largest first.
func (p *Printer) PrintCategories(summary types.Summary) {
	if len(summary.Categories) == 0 {
		p.printBox("CATEGORIES", "No technologies detected")
		return
	}

	names := make([]string, 0, len(summary.Categories))
	for name := range summary.Categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := summary.Categories[names[i]], summary.Categories[names[j]]
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-40s %3d\n", name, summary.Categories[name]))
	}
	sb.WriteString(fmt.Sprintf("%-40s %3d", "Total", summary.TotalTechnologies))

	p.printBox("CATEGORIES", sb.String())
}

// PrintComparison outputs the agreement between stacklyzer and wappalyzergo.
func (p *Printer) PrintComparison(res *compare.Result) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Agreement: %.0f%%\n", res.Agreement()*100))
	writeList(&sb, "Both", res.Matched)
	writeList(&sb, "Only stacklyzer", res.OnlyStacklyzer)
	writeList(&sb, "Only wappalyzer", res.OnlyWappalyzer)

	p.printBox("COMPARISON WITH WAPPALYZER", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	sb.WriteString(fmt.Sprintf("\n%s (%d):\n", title, len(items)))
	count := min(len(items), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > count {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-count))
	}
}
