// Package engine runs a complete technology analysis of one web page:
// fetch, parse, detect, merge, enhance and summarize.
package engine

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/detectors"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/fetch"
	"github.com/jonathan/stacklyzer/internal/types"
	"golang.org/x/sync/errgroup"
)

// ScanTimeLayout is the layout of Meta.ScanTime.
const ScanTimeLayout = "2006-01-02T15:04:05.000Z"

// Fetcher retrieves a page. *fetch.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// Engine analyzes web pages. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	fetcher   Fetcher
	fetchOpts *fetch.Options
	now       func() time.Time
	logger    *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) {
		e.fetcher = f
	}
}

// WithFetchOptions configures the default fetcher. It has no effect when
// WithFetcher is also given.
func WithFetchOptions(opts *fetch.Options) Option {
	return func(e *Engine) {
		e.fetchOpts = opts
	}
}

// WithClock sets the time source used for scan timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger enables verbose progress logging.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine. It fails when two detectors claim the same
// technology id.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.fetcher == nil {
		e.fetcher = fetch.NewClient(e.fetchOpts)
	}
	if err := detectors.Validate(detectors.All(nil)); err != nil {
		return nil, fmt.Errorf("invalid detector configuration: %w", err)
	}
	return e, nil
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// NormalizeURL trims rawURL, adds https:// when no http(s) scheme is
// present, and checks that the result has a host.
func NormalizeURL(rawURL string) (string, error) {
	u := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return "", invalidURLError(u, err)
	}
	if parsed.Host == "" || parsed.Hostname() == "" {
		return "", invalidURLError(u, nil)
	}
	return u, nil
}

// Analyze fetches rawURL and reports the technologies found on it. Every
// failure is returned as an *AnalysisError.
func (e *Engine) Analyze(ctx context.Context, rawURL string) (*types.AnalysisReport, error) {
	page, err := e.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return e.AnalyzePage(ctx, page)
}

// Fetch normalizes rawURL and retrieves the page, rejecting error statuses
// and non-textual responses.
func (e *Engine) Fetch(ctx context.Context, rawURL string) (*fetch.Result, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := e.fetcher.Fetch(ctx, u)
	if page != nil && page.StatusCode >= 400 {
		e.logf("[detect] %s returned %d %s", u, page.StatusCode, page.Status)
		return nil, httpError(u, page.StatusCode, page.Status)
	}
	if err != nil {
		ae := classify(u, err)
		e.logf("[detect] fetch %s failed (%s): %v", u, ae.Kind, err)
		return nil, ae
	}
	if page == nil {
		return nil, classify(u, fmt.Errorf("empty response"))
	}
	if !page.Textual() {
		return nil, nonHTMLError(u, page.ContentType)
	}

	page.URL = u
	page.Requested = rawURL
	if page.Truncated {
		e.logf("[detect] %s: body truncated, analyzing a partial page", u)
	}
	e.logf("[detect] fetched %s: status=%d bytes=%d hash=%016x in %v",
		u, page.StatusCode, len(page.HTML), page.BodyHash, time.Since(start).Round(time.Millisecond))
	return page, nil
}

// AnalyzePage runs detection on an already fetched page.
func (e *Engine) AnalyzePage(ctx context.Context, page *fetch.Result) (*types.AnalysisReport, error) {
	doc, err := document.Parse(page.HTML)
	if err != nil {
		return nil, &AnalysisError{
			Kind:    KindNonHTML,
			URL:     page.URL,
			Message: "Response is not HTML content",
			Cause:   err,
		}
	}

	ds := detectors.All(page.Headers)
	results := make([]detectors.Result, len(ds))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range ds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.Detect(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(page.URL, err)
	}

	report := &types.AnalysisReport{
		URL:          reportURL(page),
		Technologies: enhance(results),
		Meta: types.Meta{
			ScanTime:      e.now().UTC().Format(ScanTimeLayout),
			EngineVersion: types.EngineVersion,
		},
	}
	report.Summary = summarize(report.Technologies)

	e.logf("[detect] %s: %d technologies", page.URL, report.Summary.TotalTechnologies)
	return report, nil
}

// reportURL is the URL as the caller supplied it.
func reportURL(page *fetch.Result) string {
	if page.Requested != "" {
		return page.Requested
	}
	return page.URL
}

// enhance joins detections with the catalogue and places each record in
// its detector's bucket, preserving detector order.
func enhance(results []detectors.Result) types.Technologies {
	techs := types.NewTechnologies()
	for _, res := range results {
		bucket := bucketOf(&techs, res.Bucket)
		if bucket == nil {
			continue
		}
		for _, det := range res.Detections {
			*bucket = append(*bucket, record(det))
		}
	}
	return techs
}

func record(det detectors.Detection) types.DetectionRecord {
	def, _ := catalogue.Lookup(det.ID)
	return types.DetectionRecord{
		ID:               string(det.ID),
		Name:             def.Name,
		Description:      def.Description,
		Category:         def.Category,
		Confidence:       ConfidenceFor(len(det.Signals)),
		Website:          def.Website,
		DetectionDetails: det.Signals,
		Features:         def.Features,
		DevTools:         def.DevTools,
	}
}

func bucketOf(t *types.Technologies, b catalogue.Bucket) *[]types.DetectionRecord {
	switch b {
	case catalogue.BucketFrameworks:
		return &t.Frameworks
	case catalogue.BucketLibraries:
		return &t.Libraries
	case catalogue.BucketServerSide:
		return &t.ServerSide
	case catalogue.BucketAnalytics:
		return &t.Analytics
	case catalogue.BucketCMS:
		return &t.CMS
	case catalogue.BucketEcommerce:
		return &t.Ecommerce
	case catalogue.BucketBuildTools:
		return &t.BuildTools
	case catalogue.BucketMisc:
		return &t.Misc
	}
	return nil
}

// summarize counts records overall and per catalogue category.
func summarize(t types.Technologies) types.Summary {
	s := types.Summary{Categories: make(map[string]int)}
	for _, bucket := range t.All() {
		for _, rec := range bucket {
			s.TotalTechnologies++
			s.Categories[rec.Category]++
		}
	}
	return s
}
