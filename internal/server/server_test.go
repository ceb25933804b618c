package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/stacklyzer/internal/config"
	"github.com/jonathan/stacklyzer/internal/db"
	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/server/middleware"
	"github.com/jonathan/stacklyzer/internal/server/ratelimit"
	"github.com/jonathan/stacklyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testFrontend  = "https://stacklyzer.example.com"
	testAppSecret = "android-app-secret"
	testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"
)

// fakeAnalyzer returns a canned report or error
type fakeAnalyzer struct {
	report *types.AnalysisReport
	err    error
	urls   []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, rawURL string) (*types.AnalysisReport, error) {
	f.urls = append(f.urls, rawURL)
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

// fakeStore implements Store in memory
type fakeStore struct {
	mu        sync.Mutex
	messages  []*db.ContactMessage
	scans     []*types.AnalysisReport
	insertErr error
	scanErr   error
	closed    bool
}

func (f *fakeStore) InsertContactMessage(_ context.Context, msg *db.ContactMessage) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	msg.ID = uuid.New()
	f.messages = append(f.messages, msg)
	return msg.ID, nil
}

func (f *fakeStore) SaveScan(_ context.Context, report *types.AnalysisReport) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return uuid.Nil, f.scanErr
	}
	f.scans = append(f.scans, report)
	return uuid.New(), nil
}

func (f *fakeStore) Close() {
	f.closed = true
}

func sampleReport() *types.AnalysisReport {
	tech := types.NewTechnologies()
	tech.Libraries = append(tech.Libraries, types.DetectionRecord{
		ID:               "jquery",
		Name:             "jQuery",
		Category:         "JavaScript Library",
		Confidence:       types.ConfidenceLow,
		DetectionDetails: []string{"jQuery script"},
	})
	return &types.AnalysisReport{
		URL:          "https://example.com",
		Summary:      types.Summary{TotalTechnologies: 1, Categories: map[string]int{"JavaScript Library": 1}},
		Technologies: tech,
		Meta:         types.Meta{ScanTime: "2024-03-01T12:30:45.123Z", EngineVersion: types.EngineVersion},
	}
}

func newTestServer(t *testing.T, analyzer Analyzer, store Store) *Server {
	t.Helper()

	appSecret := &config.AppSecretConfig{BcryptCost: bcrypt.MinCost}
	require.NoError(t, appSecret.SetSecret(testAppSecret))

	jwtService := NewJWTService(&config.JWTConfig{Secret: testJWTSecret, ExpirationMinutes: 5}, testFrontend)
	limiter := ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})

	s := newServer(analyzer, store, jwtService, appSecret, limiter, testFrontend)
	t.Cleanup(s.Close)
	return s
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

func issueToken(t *testing.T, h http.Handler, headers map[string]string) string {
	t.Helper()
	w := doRequest(t, h, http.MethodGet, "/api/token", nil, headers)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp types.TokenResponse
	decodeBody(t, w, &resp)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	w := doRequest(t, s.Handler(), http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "ok", resp["status"])
}

func TestUsageEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	w := doRequest(t, s.Handler(), http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp UsageResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Website Technology Detector API", resp.Message)
	assert.Equal(t, "/api/detect", resp.Usage.Endpoint)
	assert.Equal(t, http.MethodPost, resp.Usage.Method)
	assert.Equal(t, "100 requests per 15 minutes", resp.Usage.RateLimit)

	w = doRequest(t, s.Handler(), http.MethodGet, "/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTokenEndpoint_Web(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	w := doRequest(t, s.Handler(), http.MethodGet, "/api/token", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.TokenResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 300, resp.ExpiresIn)
	assert.True(t, resp.OneTimeUse)
	_, err := time.Parse(engine.ScanTimeLayout, resp.IssuedAt)
	assert.NoError(t, err, "issuedAt should be an ISO-8601 timestamp")

	claims, err := s.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, db.PlatformWeb, claims.Platform)
	assert.Equal(t, testFrontend, claims.Origin)
}

func TestTokenEndpoint_Android(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)
	h := s.Handler()

	tests := []struct {
		name       string
		appToken   string
		wantStatus int
	}{
		{name: "valid app secret", appToken: testAppSecret, wantStatus: http.StatusOK},
		{name: "wrong app secret", appToken: "wrong", wantStatus: http.StatusForbidden},
		{name: "missing app secret", appToken: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{middleware.HeaderAppPlatform: middleware.PlatformAndroid}
			if tt.appToken != "" {
				headers[middleware.HeaderAppToken] = tt.appToken
			}
			w := doRequest(t, h, http.MethodGet, "/api/token", nil, headers)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusForbidden {
				var resp types.ErrorResponse
				decodeBody(t, w, &resp)
				assert.Equal(t, "Unauthorized application", resp.Error)
				assert.Equal(t, "Invalid app credentials", resp.Message)
				return
			}

			var resp types.TokenResponse
			decodeBody(t, w, &resp)
			claims, err := s.jwtService.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, db.PlatformAndroid, claims.Platform)
		})
	}
}

func TestDetectEndpoint_Success(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	store := &fakeStore{}
	s := newTestServer(t, analyzer, store)

	w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", map[string]string{"url": "  example.com "}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report types.AnalysisReport
	decodeBody(t, w, &report)
	assert.Equal(t, "https://example.com", report.URL)
	assert.Equal(t, 1, report.Summary.TotalTechnologies)
	require.NotNil(t, report.Find("jquery"))

	assert.Equal(t, []string{"example.com"}, analyzer.urls, "url should be trimmed")
	assert.Len(t, store.scans, 1, "scan should be recorded")
}

func TestDetectEndpoint_ScanStoreFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{scanErr: errors.New("db down")}
	s := newTestServer(t, &fakeAnalyzer{report: sampleReport()}, store)

	w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", map[string]string{"url": "example.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDetectEndpoint_NoToken(t *testing.T) {
	// Detection is public: no origin and no bearer token required.
	s := newTestServer(t, &fakeAnalyzer{report: sampleReport()}, nil)

	w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", map[string]string{"url": "example.com"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDetectEndpoint_MissingURL(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	s := newTestServer(t, analyzer, nil)

	for _, body := range []any{map[string]string{}, map[string]string{"url": ""}, map[string]string{"url": "   "}} {
		w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", body, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "URL is required", resp.Error)
	}
	assert.Empty(t, analyzer.urls, "analyzer must not be called")
}

func TestDetectEndpoint_InvalidJSON(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", `{"url": `, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Invalid request body", resp.Error)
}

func TestDetectEndpoint_AnalysisErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid url",
			err:        &engine.AnalysisError{Kind: engine.KindInvalidURL, Message: "Invalid URL format: ::"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid URL format",
		},
		{
			name:       "not found",
			err:        &engine.AnalysisError{Kind: engine.KindNotFound, Message: "Website not found: nope.invalid"},
			wantStatus: http.StatusNotFound,
			wantError:  "Website not found",
		},
		{
			name:       "timeout",
			err:        &engine.AnalysisError{Kind: engine.KindTimeout},
			wantStatus: http.StatusRequestTimeout,
			wantError:  "Request timeout",
		},
		{
			name:       "connection refused",
			err:        &engine.AnalysisError{Kind: engine.KindConnectionRefused},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Connection refused",
		},
		{
			name:       "connection reset",
			err:        &engine.AnalysisError{Kind: engine.KindConnectionReset},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "Connection reset",
		},
		{
			name:       "upstream http error",
			err:        &engine.AnalysisError{Kind: engine.KindHTTPError, StatusCode: 403, Status: "Forbidden"},
			wantStatus: http.StatusForbidden,
			wantError:  "HTTP Error 403",
		},
		{
			name:       "non html",
			err:        &engine.AnalysisError{Kind: engine.KindNonHTML},
			wantStatus: http.StatusUnsupportedMediaType,
			wantError:  "Unsupported content",
		},
		{
			name:       "unknown",
			err:        &engine.AnalysisError{Kind: engine.KindUnknown, Cause: errors.New("secret internal detail")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to detect technologies",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := newTestServer(t, &fakeAnalyzer{err: tt.err}, store)

			w := doRequest(t, s.Handler(), http.MethodPost, "/api/detect", map[string]string{"url": "example.com"}, nil)
			require.Equal(t, tt.wantStatus, w.Code)

			var resp types.ErrorResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.NotContains(t, w.Body.String(), "secret internal detail")
			assert.Empty(t, store.scans, "failed analyses are not recorded")
		})
	}
}

func TestContactEndpoint_Success(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, &fakeAnalyzer{}, store)
	h := s.Handler()

	token := issueToken(t, h, nil)
	body := map[string]string{"name": " Ada ", "email": "ada@example.com", "message": "Great tool!"}
	w := doRequest(t, h, http.MethodPost, "/api/contact", body, map[string]string{
		"Origin":        testFrontend,
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ContactResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)

	require.Len(t, store.messages, 1)
	assert.Equal(t, "Ada", store.messages[0].Name)
	assert.Equal(t, "ada@example.com", store.messages[0].Email)
	assert.Equal(t, db.PlatformWeb, store.messages[0].Platform)
	assert.Equal(t, "192.0.2.1", store.messages[0].RemoteIP)
}

func TestContactEndpoint_TokenIsOneTime(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, &fakeAnalyzer{}, store)
	h := s.Handler()

	token := issueToken(t, h, nil)
	headers := map[string]string{"Origin": testFrontend, "Authorization": "Bearer " + token}
	body := map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"}

	w := doRequest(t, h, http.MethodPost, "/api/contact", body, headers)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/contact", body, headers)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp types.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Token already used", resp.Error)
	assert.Len(t, store.messages, 1)
}

func TestContactEndpoint_Rejections(t *testing.T) {
	body := map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"}

	tests := []struct {
		name       string
		origin     string
		withToken  bool
		wantStatus int
		wantError  string
	}{
		{name: "missing origin", withToken: true, wantStatus: http.StatusForbidden, wantError: "Missing origin header"},
		{name: "foreign origin", origin: "https://evil.example.net", withToken: true, wantStatus: http.StatusForbidden, wantError: "Unauthorized origin"},
		{name: "missing token", origin: testFrontend, wantStatus: http.StatusUnauthorized, wantError: "Authentication required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := newTestServer(t, &fakeAnalyzer{}, store)
			h := s.Handler()

			headers := map[string]string{}
			if tt.origin != "" {
				headers["Origin"] = tt.origin
			}
			if tt.withToken {
				headers["Authorization"] = "Bearer " + issueToken(t, h, nil)
			}

			w := doRequest(t, h, http.MethodPost, "/api/contact", body, headers)
			require.Equal(t, tt.wantStatus, w.Code)

			var resp types.ErrorResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Empty(t, store.messages)
		})
	}
}

func TestContactEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]string
		wantError   string
		wantMessage string
	}{
		{
			name:        "missing message",
			body:        map[string]string{"name": "Ada", "email": "ada@example.com"},
			wantError:   "Missing required fields",
			wantMessage: "Name, email, and message are required",
		},
		{
			name:        "blank name",
			body:        map[string]string{"name": "   ", "email": "ada@example.com", "message": "Hi"},
			wantError:   "Missing required fields",
			wantMessage: "Name, email, and message are required",
		},
		{
			name:        "invalid email",
			body:        map[string]string{"name": "Ada", "email": "not-an-email", "message": "Hi"},
			wantError:   "Validation error",
			wantMessage: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			s := newTestServer(t, &fakeAnalyzer{}, store)
			h := s.Handler()

			w := doRequest(t, h, http.MethodPost, "/api/contact", tt.body, map[string]string{
				"Origin":        testFrontend,
				"Authorization": "Bearer " + issueToken(t, h, nil),
			})
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp types.ErrorResponse
			decodeBody(t, w, &resp)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Empty(t, store.messages)
		})
	}
}

func TestContactEndpoint_NoStore(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)
	h := s.Handler()

	w := doRequest(t, h, http.MethodPost, "/api/contact",
		map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"},
		map[string]string{"Origin": testFrontend, "Authorization": "Bearer " + issueToken(t, h, nil)})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactEndpoint_StoreFailure(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("insert failed")}
	s := newTestServer(t, &fakeAnalyzer{}, store)
	h := s.Handler()

	w := doRequest(t, h, http.MethodPost, "/api/contact",
		map[string]string{"name": "Ada", "email": "ada@example.com", "message": "Hello"},
		map[string]string{"Origin": testFrontend, "Authorization": "Bearer " + issueToken(t, h, nil)})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp types.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Failed to send message", resp.Error)
	assert.NotContains(t, w.Body.String(), "insert failed")
}

func TestContactEndpoint_Android(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, &fakeAnalyzer{}, store)
	h := s.Handler()

	appHeaders := map[string]string{
		middleware.HeaderAppPlatform: middleware.PlatformAndroid,
		middleware.HeaderAppToken:    testAppSecret,
	}
	token := issueToken(t, h, appHeaders)

	headers := map[string]string{"Authorization": "Bearer " + token}
	for k, v := range appHeaders {
		headers[k] = v
	}
	w := doRequest(t, h, http.MethodPost, "/api/contact",
		map[string]string{"name": "Ada", "email": "ada@example.com", "message": "From the app"}, headers)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), "android requests skip CORS")

	require.Len(t, store.messages, 1)
	assert.Equal(t, db.PlatformAndroid, store.messages[0].Platform)
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := doRequest(t, handler, http.MethodGet, "/test", nil, nil)
	assert.Equal(t, testFrontend, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	w := doRequest(t, handler, http.MethodOptions, "/api/detect", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, w.Body.Len(), "OPTIONS response should have empty body")
}

func TestCORSMiddleware_NoFrontendConfigured(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)
	s.frontendURL = ""

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := doRequest(t, handler, http.MethodGet, "/test", nil, nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	called := false
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	w := doRequest(t, handler, http.MethodGet, "/test", nil, nil)
	assert.True(t, called, "logging middleware should call next handler")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{report: sampleReport()}, &fakeStore{})
	s.rateLimiter.Stop()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:         true,
		EndpointConfigs: ratelimit.EndpointConfigs(2, 15*time.Minute, 1, time.Hour),
	})
	h := s.Handler()

	body := map[string]string{"url": "example.com"}
	w := doRequest(t, h, http.MethodPost, "/api/detect", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("RateLimit-Remaining"))

	w = doRequest(t, h, http.MethodPost, "/api/detect", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/detect", body, nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]any
	decodeBody(t, w, &resp)
	assert.Equal(t, "Too many requests, please try again later", resp["error"])
	assert.Equal(t, "15 minutes", resp["retryAfter"])

	// Health checks are never limited
	w = doRequest(t, h, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("RateLimit-Limit"))
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer(t, &fakeAnalyzer{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:52100"
	assert.Equal(t, "203.0.113.9", s.extractClientID(req))

	req.RemoteAddr = "not-an-address"
	assert.Equal(t, "not-an-address", s.extractClientID(req))
}

func TestServerClose(t *testing.T) {
	store := &fakeStore{}
	s := newTestServer(t, &fakeAnalyzer{}, store)
	s.jwtService.StartCleanup()

	s.Close()
	assert.True(t, store.closed)
}
