// Package server provides the HTTP API for website technology detection.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStoreUnavailable indicates that a request needs the database but none is configured.
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var ae *engine.AnalysisError
	if errors.As(err, &ae) {
		return analysisStatus(ae)
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func analysisStatus(ae *engine.AnalysisError) int {
	switch ae.Kind {
	case engine.KindInvalidURL:
		return http.StatusBadRequest
	case engine.KindNotFound:
		return http.StatusNotFound
	case engine.KindTimeout:
		return http.StatusRequestTimeout
	case engine.KindConnectionRefused, engine.KindConnectionReset:
		return http.StatusServiceUnavailable
	case engine.KindHTTPError:
		// Mirror the upstream status; anything that is not an error status
		// is reported as a bad gateway.
		if ae.StatusCode >= 400 && ae.StatusCode <= 599 {
			return ae.StatusCode
		}
		return http.StatusBadGateway
	case engine.KindNonHTML:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// analysisErrorResponse builds the client-facing body for a failed analysis.
// Messages never include the underlying cause.
func analysisErrorResponse(err error) types.ErrorResponse {
	var ae *engine.AnalysisError
	if !errors.As(err, &ae) {
		return types.ErrorResponse{
			Error:   "Failed to detect technologies",
			Message: "An error occurred while analyzing the website. Please try again later.",
		}
	}

	switch ae.Kind {
	case engine.KindInvalidURL:
		return types.ErrorResponse{
			Error:   "Invalid URL format",
			Message: "Please provide a valid URL (e.g., example.com or https://example.com)",
		}
	case engine.KindNotFound:
		return types.ErrorResponse{
			Error:   "Website not found",
			Message: "The domain could not be resolved. Please check if the URL is correct.",
		}
	case engine.KindTimeout:
		return types.ErrorResponse{
			Error:   "Request timeout",
			Message: "The website took too long to respond. It might be down or too slow.",
		}
	case engine.KindConnectionRefused:
		return types.ErrorResponse{
			Error:   "Connection refused",
			Message: "The website server refused the connection. It might be down or blocking requests.",
		}
	case engine.KindConnectionReset:
		return types.ErrorResponse{
			Error:   "Connection reset",
			Message: "The connection to the website was reset. Please try again later.",
		}
	case engine.KindHTTPError:
		status := ae.Status
		if status == "" {
			status = "Unknown error"
		}
		return types.ErrorResponse{
			Error:   fmt.Sprintf("HTTP Error %d", ae.StatusCode),
			Message: "The website returned an error: " + status,
		}
	case engine.KindNonHTML:
		return types.ErrorResponse{
			Error:   "Unsupported content",
			Message: "The URL did not return an HTML page.",
		}
	default:
		return types.ErrorResponse{
			Error:   "Failed to detect technologies",
			Message: "An error occurred while analyzing the website. Please try again later.",
		}
	}
}
