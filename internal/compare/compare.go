// Package compare cross-checks a stacklyzer report against wappalyzergo
// fingerprints computed from the same fetched page.
package compare

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/stacklyzer/internal/fetch"
	"github.com/jonathan/stacklyzer/internal/types"
	wappalyzer "github.com/projectdiscovery/wappalyzergo"
)

// Result lists technology names found by both tools and by only one of them.
// All lists are sorted.
type Result struct {
	URL            string   `json:"url"`
	Matched        []string `json:"matched"`
	OnlyStacklyzer []string `json:"onlyStacklyzer"`
	OnlyWappalyzer []string `json:"onlyWappalyzer"`
}

// Agreement is the share of the union found by both tools, in [0, 1].
func (r *Result) Agreement() float64 {
	total := len(r.Matched) + len(r.OnlyStacklyzer) + len(r.OnlyWappalyzer)
	if total == 0 {
		return 1
	}
	return float64(len(r.Matched)) / float64(total)
}

// Comparer wraps a loaded wappalyzergo client.
type Comparer struct {
	client *wappalyzer.Wappalyze
}

// New loads the embedded wappalyzergo fingerprint database.
func New() (*Comparer, error) {
	client, err := wappalyzer.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create wappalyzer client: %w", err)
	}
	return &Comparer{client: client}, nil
}

// Fingerprint returns the technology names wappalyzergo finds on the page,
// with versions stripped.
func (c *Comparer) Fingerprint(page *fetch.Result) []string {
	if page == nil {
		return nil
	}
	fingerprints := c.client.Fingerprint(page.Headers, []byte(page.HTML))

	names := make([]string, 0, len(fingerprints))
	for tech := range fingerprints {
		names = append(names, stripVersion(tech))
	}
	return names
}

// Compare fingerprints page and diffs the result against report.
func (c *Comparer) Compare(page *fetch.Result, report *types.AnalysisReport) *Result {
	return Diff(report, c.Fingerprint(page))
}

// Diff compares the report's technology names with an external list of
// names. Names are matched case-insensitively, ignoring punctuation and
// spacing ("Next.js" matches "nextjs").
func Diff(report *types.AnalysisReport, external []string) *Result {
	res := &Result{
		Matched:        []string{},
		OnlyStacklyzer: []string{},
		OnlyWappalyzer: []string{},
	}

	ours := map[string]string{}
	if report != nil {
		res.URL = report.URL
		for _, bucket := range report.Technologies.All() {
			for _, rec := range bucket {
				ours[normalize(rec.Name)] = rec.Name
			}
		}
	}

	theirs := map[string]string{}
	for _, name := range external {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, dup := theirs[key]; !dup {
			theirs[key] = name
		}
	}

	for key, name := range ours {
		if _, ok := theirs[key]; ok {
			res.Matched = append(res.Matched, name)
		} else {
			res.OnlyStacklyzer = append(res.OnlyStacklyzer, name)
		}
	}
	for key, name := range theirs {
		if _, ok := ours[key]; !ok {
			res.OnlyWappalyzer = append(res.OnlyWappalyzer, name)
		}
	}

	sort.Strings(res.Matched)
	sort.Strings(res.OnlyStacklyzer)
	sort.Strings(res.OnlyWappalyzer)
	return res
}

// stripVersion drops the ":version" suffix wappalyzergo appends.
func stripVersion(tech string) string {
	if name, _, ok := strings.Cut(tech, ":"); ok {
		return name
	}
	return tech
}

func normalize(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
