// Package fetch retrieves a single web page the way a desktop browser would
// request it, returning the decoded HTML together with the response metadata
// the detectors need.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is a desktop Chrome user agent. Some sites serve a
// stripped page to unknown clients, which hides most fingerprints.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultMaxRedirects is the number of redirects followed before giving up.
const DefaultMaxRedirects = 5

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes int64 = 10 << 20

// Result holds the response of a page fetch.
type Result struct {
	// URL is the URL that was requested.
	URL string
	// Requested is the URL as the caller supplied it, before normalization.
	// Empty when the page was fetched directly.
	Requested string
	// FinalURL is the URL after redirects.
	FinalURL    string
	StatusCode  int
	Status      string
	Headers     http.Header
	HTML        string
	ContentType string
	// BodyHash is the murmur3 hash of the raw body bytes.
	BodyHash uint64
	// Truncated is set when the body exceeded MaxBodyBytes.
	Truncated bool
}

// Textual reports whether the response carries markup or text that can be
// inspected for technology signals.
func (r *Result) Textual() bool {
	if r == nil {
		return false
	}
	return IsTextual(r.ContentType)
}

// Error represents an error during URL fetching.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxRedirects int
	MaxBodyBytes int64
	Headers      map[string]string
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxRedirects: DefaultMaxRedirects,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// normalize fills zero values with defaults.
func (o *Options) normalize() *Options {
	out := *o
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.MaxRedirects < 0 {
		out.MaxRedirects = 0
	} else if out.MaxRedirects == 0 {
		out.MaxRedirects = DefaultMaxRedirects
	}
	if out.MaxBodyBytes <= 0 {
		out.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &out
}

// Client fetches pages with a fixed set of options. It is safe for
// concurrent use.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient creates a Client. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = opts.normalize()

	maxRedirects := opts.MaxRedirects
	return &Client{
		opts: opts,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Options returns the effective options of the client.
func (c *Client) Options() Options {
	return *c.opts
}

// URL retrieves a page with the given options.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	return NewClient(opts).Fetch(ctx, urlStr)
}

// Fetch retrieves urlStr. Responses with status 400 and above are returned
// together with an *Error carrying the status code.
func (c *Client) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		Status:      statusText(resp),
		Headers:     resp.Header,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if int64(len(raw)) > c.opts.MaxBodyBytes {
		raw = raw[:c.opts.MaxBodyBytes]
		result.Truncated = true
	}
	if result.ContentType == "" && len(raw) > 0 {
		result.ContentType = http.DetectContentType(raw)
	}
	result.BodyHash = murmur3.Sum64(raw)
	result.HTML = decode(raw, result.ContentType)

	if resp.StatusCode >= http.StatusBadRequest {
		return result, &Error{
			URL:        urlStr,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return result, nil
}

// statusText returns the reason phrase sent by the server, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// decode converts the body to UTF-8 using the declared or sniffed charset.
func decode(raw []byte, contentType string) string {
	if !IsTextual(contentType) {
		return string(raw)
	}
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// IsTextual reports whether a Content-Type describes an HTML or other text
// document. An empty content type is treated as text.
func IsTextual(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	case strings.HasSuffix(mediaType, "+xml"):
		return true
	}
	return false
}
