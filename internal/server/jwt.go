package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/stacklyzer/internal/config"
	"github.com/jonathan/stacklyzer/internal/server/middleware"
)

// tokenType marks tokens issued by GET /api/token.
const tokenType = "api-access"

const (
	// usedTokenRetention is the minimum time a redeemed token id is
	// remembered. Longer token lifetimes extend it.
	usedTokenRetention = 10 * time.Minute
	// usedTokenCleanupInterval is how often expired entries are dropped.
	usedTokenCleanupInterval = 5 * time.Minute
)

// Claims represents the claims of a one-time API token.
type Claims struct {
	Origin   string `json:"origin,omitempty"`
	Platform string `json:"platform"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// GetTokenID returns the unique token id (jti).
// This implements the middleware.TokenClaims interface.
func (c *Claims) GetTokenID() string {
	return c.ID
}

// GetPlatform returns the platform the token was issued to.
func (c *Claims) GetPlatform() string {
	return c.Platform
}

// AsTokenValidator returns a TokenValidator adapter for this JWTService.
// This allows the JWTService to be used with middleware without creating import cycles.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtServiceValidator{service: s}
}

// jwtServiceValidator adapts JWTService to middleware.TokenValidator interface.
type jwtServiceValidator struct {
	service *JWTService
}

func (v *jwtServiceValidator) ValidateToken(tokenString string) (middleware.TokenClaims, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (v *jwtServiceValidator) Redeem(tokenID string) bool {
	return v.service.Redeem(tokenID)
}

// JWTService issues and validates one-time API tokens. Redeemed token ids
// are kept in memory until they can no longer be replayed.
type JWTService struct {
	config *config.JWTConfig
	origin string
	now    func() time.Time

	mu sync.Mutex
	// used maps redeemed token ids to the time they may be forgotten.
	used map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewJWTService creates a new JWT service with the given configuration.
// origin is embedded in every issued token.
func NewJWTService(cfg *config.JWTConfig, origin string) *JWTService {
	return &JWTService{
		config: cfg,
		origin: origin,
		now:    time.Now,
		used:   make(map[string]time.Time),
	}
}

// Expiration returns the lifetime of issued tokens.
func (s *JWTService) Expiration() time.Duration {
	return s.config.Expiration()
}

// GenerateToken generates a signed one-time token for the given platform.
func (s *JWTService) GenerateToken(platform string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.Expiration())

	claims := &Claims{
		Origin:   s.origin,
		Platform: platform,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, now, nil
}

// ValidateToken validates a token's signature, lifetime and type and returns
// its claims. It does not redeem the token.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.Type != tokenType {
		return nil, fmt.Errorf("unexpected token type: %q", claims.Type)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token has no id")
	}

	return claims, nil
}

// Redeem marks a token id as used. It returns false when the id was
// already redeemed.
func (s *JWTService) Redeem(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.used[tokenID]; seen {
		return false
	}
	s.used[tokenID] = s.now().Add(s.retention())
	return true
}

// retention is how long a redeemed id must be kept so that the token it
// belongs to has expired before the id is forgotten.
func (s *JWTService) retention() time.Duration {
	return max(usedTokenRetention, s.config.Expiration())
}

// StartCleanup periodically forgets redeemed ids whose tokens can no longer be replayed.
func (s *JWTService) StartCleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cleanupTicker != nil {
		return
	}

	s.cleanupTicker = time.NewTicker(usedTokenCleanupInterval)
	s.cleanupStop = make(chan struct{})
	go func(ticker *time.Ticker, stop chan struct{}) {
		for {
			select {
			case <-ticker.C:
				s.cleanupUsed()
			case <-stop:
				return
			}
		}
	}(s.cleanupTicker, s.cleanupStop)
}

// cleanupUsed drops redeemed ids past their retention.
func (s *JWTService) cleanupUsed() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, forgetAt := range s.used {
		if now.After(forgetAt) {
			delete(s.used, id)
		}
	}
}

// Stop stops the cleanup goroutine.
func (s *JWTService) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.cleanupTicker != nil {
			s.cleanupTicker.Stop()
			close(s.cleanupStop)
		}
	})
}
