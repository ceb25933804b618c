// Package ratelimit provides per-client rate limiting using token buckets.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucket is the token bucket of one client and endpoint config.
type bucket struct {
	limiter    *rate.Limiter
	window     time.Duration
	lastAccess time.Time
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
	Message    string
	Retry      string
}

// Limiter manages rate limiting for multiple clients using token buckets.
// A bucket holds Limit tokens and refills evenly over Window.
type Limiter struct {
	buckets       map[string]*bucket // clientID:path:method -> bucket
	mu            sync.Mutex
	config        *Config
	now           func() time.Time
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil config enables the default endpoint limits.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
			EndpointConfigs: DefaultEndpointConfigs(),
		}
	}

	limiter := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		now:     time.Now,
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	return l.AllowAt(clientID, endpoint, method, l.now())
}

// AllowAt is Allow evaluated at the given instant.
func (l *Limiter) AllowAt(clientID string, endpoint string, method string, now time.Time) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	// Every matching config must allow the request. The reported info is the
	// one with the fewest remaining requests.
	var result *Info
	for _, ec := range MatchEndpoints(endpoint, method, l.config.EndpointConfigs) {
		if ec.Limit <= 0 || ec.Window <= 0 {
			continue
		}

		b := l.getBucket(clientID+":"+ec.Path+":"+ec.Method, ec, now)
		allowed := b.limiter.AllowN(now, 1)
		info := bucketInfo(b.limiter, ec, now, allowed)

		if !allowed {
			return false, info
		}
		if result == nil || info.Remaining < result.Remaining {
			result = &info
		}
	}

	if result == nil {
		// No limit applies (e.g. health check)
		return true, Info{Allowed: true}
	}
	return true, *result
}

// bucketInfo reports the bucket state after a request was evaluated.
func bucketInfo(lim *rate.Limiter, ec *EndpointConfig, now time.Time, allowed bool) Info {
	perSecond := float64(lim.Limit())
	tokens := math.Max(lim.TokensAt(now), 0)

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: int(math.Floor(tokens)),
		ResetTime: now.Add(secondsToDuration((float64(lim.Burst()) - tokens) / perSecond)),
		Message:   ec.Message,
		Retry:     ec.Retry,
	}
	if !allowed {
		info.RetryAfter = secondsToDuration((1 - tokens) / perSecond)
	}
	return info
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

// getBucket gets or creates the token bucket for the given key.
func (l *Limiter) getBucket(key string, ec *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, exists := l.buckets[key]
	if !exists {
		every := ec.Window / time.Duration(ec.Limit)
		b = &bucket{
			limiter: rate.NewLimiter(rate.Every(every), ec.Limit),
			window:  ec.Window,
		}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b
}

// cleanup removes old unused buckets to prevent memory leaks.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets(l.now())
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets idle for longer than their window. Such
// buckets have refilled completely, so dropping them changes nothing.
func (l *Limiter) cleanupBuckets(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > b.window {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
