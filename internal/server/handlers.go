package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/stacklyzer/internal/db"
	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/server/middleware"
	"github.com/jonathan/stacklyzer/internal/types"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 64 << 10

// UsageResponse represents the response for GET /
type UsageResponse struct {
	Message string `json:"message"`
	Usage   Usage  `json:"usage"`
}

// Usage describes how to call the detection endpoint.
type Usage struct {
	Endpoint  string            `json:"endpoint"`
	Method    string            `json:"method"`
	Body      map[string]string `json:"body"`
	RateLimit string            `json:"rateLimit"`
}

// ContactResponse represents the response for POST /api/contact
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleUsage describes the API
func (s *Server) handleUsage(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, UsageResponse{
		Message: "Website Technology Detector API",
		Usage: Usage{
			Endpoint:  "/api/detect",
			Method:    http.MethodPost,
			Body:      map[string]string{"url": "https://example.com"},
			RateLimit: "100 requests per 15 minutes",
		},
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleToken issues a one-time API token. The Android app must present
// its app secret.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	platform := db.PlatformWeb
	if middleware.IsAndroid(r) {
		platform = db.PlatformAndroid
		if !s.appSecret.Verify(r.Header.Get(middleware.HeaderAppToken)) {
			log.Printf("[auth] Rejected token request with invalid app credentials from %s", s.extractClientID(r))
			s.errorResponse(w, http.StatusForbidden, "Unauthorized application", "Invalid app credentials")
			return
		}
	}

	token, issuedAt, err := s.jwtService.GenerateToken(platform)
	if err != nil {
		log.Printf("[auth] Failed to generate token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Server error", "Could not issue a token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.TokenResponse{
		Token:      token,
		ExpiresIn:  int(s.jwtService.Expiration().Seconds()),
		IssuedAt:   issuedAt.UTC().Format(engine.ScanTimeLayout),
		OneTimeUse: true,
	})
}

// handleDetect analyzes a website and returns its technology report
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req types.DetectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "URL is required", "")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		// Only the message; causes may carry internal details.
		log.Printf("[detect] Error analyzing %s: %s", req.URL, err.Error())
		s.jsonResponse(w, HTTPStatus(err), analysisErrorResponse(err))
		return
	}

	if s.store != nil {
		if _, err := s.store.SaveScan(r.Context(), report); err != nil {
			log.Printf("[detect] Failed to record scan of %s: %v", report.URL, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleContact stores a contact form submission. Authentication and origin
// checks run in middleware before this handler.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), "Contact form unavailable", "Messages cannot be received right now. Please try again later.")
		return
	}

	var req types.ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		verr := contactValidationError(err)
		if verr.Field == "" {
			s.errorResponse(w, HTTPStatus(verr), "Missing required fields", verr.Message)
			return
		}
		s.errorResponse(w, HTTPStatus(verr), "Validation error", verr.Message)
		return
	}

	platform := middleware.GetPlatform(r)
	if platform == "" {
		platform = db.PlatformWeb
	}

	ctx := r.Context()
	id, err := s.store.InsertContactMessage(ctx, &db.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		Platform: platform,
		RemoteIP: s.extractClientID(r),
	})
	if err != nil {
		log.Printf("Error storing contact message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to send message",
			"An error occurred while sending your message. Please try again later.")
		return
	}

	log.Printf("Stored contact message %s (%s)", id, platform)
	s.jsonResponse(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Your message has been sent successfully!",
	})
}

// contactValidationError converts validator errors into an ErrValidation.
// Missing fields yield an ErrValidation without a Field.
func contactValidationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrValidation{Message: err.Error()}
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &ErrValidation{Message: "Name, email, and message are required"}
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "email":
		return &ErrValidation{Field: "email", Message: "Invalid email format"}
	case "max":
		return &ErrValidation{Field: strings.ToLower(fe.Field()), Message: fe.Field() + " is too long"}
	default:
		return &ErrValidation{Field: strings.ToLower(fe.Field()), Message: fe.Field() + " is invalid"}
	}
}

// decodeJSON decodes a bounded JSON request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
