// Package middleware provides HTTP middleware for request origin checks and
// one-time token authentication.
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// Request headers sent by the mobile app.
const (
	HeaderAppPlatform = "X-App-Platform"
	HeaderAppToken    = "X-App-Token"
)

// PlatformAndroid is the X-App-Platform value sent by the Android app.
const PlatformAndroid = "android"

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// platformKey is the context key for storing the authenticated platform.
const platformKey ContextKey = "platform"

// TokenValidator is an interface for validating one-time tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (TokenClaims, error)
	// Redeem marks a token id as used and reports whether it was unused.
	Redeem(tokenID string) bool
}

// TokenClaims is an interface for reading token claims.
type TokenClaims interface {
	GetTokenID() string
	GetPlatform() string
}

// AppVerifier checks the shared secret presented by the mobile app.
type AppVerifier interface {
	Verify(token string) bool
}

// IsAndroid reports whether the request comes from the Android app.
func IsAndroid(r *http.Request) bool {
	return r.Header.Get(HeaderAppPlatform) == PlatformAndroid
}

// VerifyOrigin creates middleware that rejects requests that neither come
// from allowedOrigin nor carry a valid app token. Paths in exempt skip the check.
func VerifyOrigin(allowedOrigin string, apps AppVerifier, exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r.URL.Path, exempt) {
				next.ServeHTTP(w, r)
				return
			}

			if IsAndroid(r) {
				if apps == nil || !apps.Verify(r.Header.Get(HeaderAppToken)) {
					log.Printf("[auth] Invalid application token from %s", r.RemoteAddr)
					writeError(w, http.StatusForbidden, "Invalid application token", "")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			if origin == "" {
				origin = r.Header.Get("Referer")
			}
			if origin == "" {
				writeError(w, http.StatusForbidden, "Missing origin header", "")
				return
			}
			if allowedOrigin == "" || !strings.HasPrefix(origin, allowedOrigin) {
				log.Printf("[auth] Unauthorized origin %q", origin)
				writeError(w, http.StatusForbidden, "Unauthorized origin", "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware creates middleware that requires a valid, unused bearer
// token and adds the token's platform to the request context. Each token
// is accepted once. Paths in exempt skip authentication.
func AuthMiddleware(tokens TokenValidator, exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r.URL.Path, exempt) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Authentication required", "")
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				log.Printf("[auth] Rejected token: %v", err)
				writeError(w, http.StatusUnauthorized, "Invalid or expired token",
					"Your token is invalid or has expired. Please request a new token.")
				return
			}

			if !tokens.Redeem(claims.GetTokenID()) {
				writeError(w, http.StatusUnauthorized, "Token already used",
					"This token has already been used. Please request a new token.")
				return
			}

			ctx := context.WithValue(r.Context(), platformKey, claims.GetPlatform())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPlatform returns the platform of the authenticated token, or "" when
// the request was not authenticated.
func GetPlatform(r *http.Request) string {
	platform, _ := r.Context().Value(platformKey).(string)
	return platform
}

// PlatformKey returns the context key for the platform (for testing purposes).
func PlatformKey() ContextKey {
	return platformKey
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func isExempt(path string, exempt []string) bool {
	for _, p := range exempt {
		if path == p {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, errMsg, message string) {
	body := map[string]string{"error": errMsg}
	if message != "" {
		body["message"] = message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
