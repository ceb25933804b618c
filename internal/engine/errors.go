package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Kind classifies why an analysis failed.
type Kind string

// Failure kinds, in classification priority order.
const (
	KindInvalidURL        Kind = "INVALID_URL"
	KindNotFound          Kind = "NOT_FOUND"
	KindTimeout           Kind = "TIMEOUT"
	KindConnectionRefused Kind = "CONNECTION_REFUSED"
	KindConnectionReset   Kind = "CONNECTION_RESET"
	KindHTTPError         Kind = "HTTP_ERROR"
	KindNonHTML           Kind = "NON_HTML_RESPONSE"
	KindUnknown           Kind = "UNKNOWN"
)

// AnalysisError is the single terminal error returned for a failed analysis.
// Message is safe to show to API callers.
type AnalysisError struct {
	Kind       Kind
	URL        string
	StatusCode int
	Status     string
	Message    string
	Cause      error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of an analysis error, KindUnknown for any other
// error, and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func invalidURLError(rawURL string, cause error) *AnalysisError {
	return &AnalysisError{
		Kind:    KindInvalidURL,
		URL:     rawURL,
		Message: fmt.Sprintf("Invalid URL format: %s", rawURL),
		Cause:   cause,
	}
}

func httpError(url string, code int, status string) *AnalysisError {
	return &AnalysisError{
		Kind:       KindHTTPError,
		URL:        url,
		StatusCode: code,
		Status:     status,
		Message:    fmt.Sprintf("HTTP Error %d: %s", code, status),
	}
}

func nonHTMLError(url, contentType string) *AnalysisError {
	return &AnalysisError{
		Kind:    KindNonHTML,
		URL:     url,
		Message: "Response is not HTML content",
		Cause:   fmt.Errorf("content type %q", contentType),
	}
}

// classify maps a transport failure to its kind.
func classify(url string, err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return &AnalysisError{
			Kind:    KindNotFound,
			URL:     url,
			Message: fmt.Sprintf("Website not found: %s", url),
			Cause:   err,
		}
	}

	if isTimeout(err) {
		return &AnalysisError{
			Kind:    KindTimeout,
			URL:     url,
			Message: fmt.Sprintf("Request timeout: %s took too long to respond", url),
			Cause:   err,
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &AnalysisError{
			Kind:    KindConnectionRefused,
			URL:     url,
			Message: fmt.Sprintf("Connection refused: %s is refusing connections", url),
			Cause:   err,
		}
	}

	if errors.Is(err, syscall.ECONNRESET) {
		return &AnalysisError{
			Kind:    KindConnectionReset,
			URL:     url,
			Message: fmt.Sprintf("Connection reset: The connection to %s was reset", url),
			Cause:   err,
		}
	}

	return &AnalysisError{
		Kind:    KindUnknown,
		URL:     url,
		Message: fmt.Sprintf("Error analyzing website: %s", url),
		Cause:   err,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
