package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

var testStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		EndpointConfigs: configs,
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{Path: "/api/", Limit: 10, Window: time.Minute}))
	defer limiter.Stop()

	clientID := "127.0.0.1"

	// Should allow requests up to limit
	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.AllowAt(clientID, "/api/detect", "POST", testStart)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	// 11th request should be denied
	allowed, rateInfo := limiter.AllowAt(clientID, "/api/detect", "POST", testStart)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter != 6*time.Second {
		t.Errorf("Expected retry after 6s, got %v", rateInfo.RetryAfter)
	}
	if !rateInfo.ResetTime.Equal(testStart.Add(time.Minute)) {
		t.Errorf("Expected reset at %v, got %v", testStart.Add(time.Minute), rateInfo.ResetTime)
	}
}

func TestLimiter_Refill(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{Path: "/api/", Limit: 10, Window: time.Minute}))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart)
	}

	// One token refills every 6 seconds
	if allowed, _ := limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart.Add(5*time.Second)); allowed {
		t.Error("Expected request before refill to be denied")
	}
	if allowed, _ := limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart.Add(6*time.Second)); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _ := limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart.Add(6*time.Second)); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}

	// A full window restores the whole bucket
	_, rateInfo := limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart.Add(2*time.Minute))
	if rateInfo.Remaining != 9 {
		t.Errorf("Expected remaining 9 after a full window, got %d", rateInfo.Remaining)
	}
}

func TestLimiter_DefaultEndpointConfigs(t *testing.T) {
	limiter := NewLimiter(testConfig(DefaultEndpointConfigs()...))
	defer limiter.Stop()

	clientID := "10.0.0.1"

	// Contact form: 5 per hour
	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.AllowAt(clientID, "/api/contact", "POST", testStart)
		if !allowed {
			t.Fatalf("Expected contact submission %d to be allowed", i+1)
		}
		if rateInfo.Limit != 5 {
			t.Errorf("Expected contact limit 5 to be reported, got %d", rateInfo.Limit)
		}
	}
	allowed, rateInfo := limiter.AllowAt(clientID, "/api/contact", "POST", testStart)
	if allowed {
		t.Fatal("Expected 6th contact submission to be denied")
	}
	if rateInfo.Message != "Too many contact form submissions, please try again later" {
		t.Errorf("Unexpected message %q", rateInfo.Message)
	}
	if rateInfo.Retry != "1 hour" {
		t.Errorf("Expected retry hint '1 hour', got %q", rateInfo.Retry)
	}

	// Other API endpoints are still available; contact submissions counted
	// against the general budget too.
	allowed, rateInfo = limiter.AllowAt(clientID, "/api/detect", "POST", testStart)
	if !allowed {
		t.Fatal("Expected detect request to be allowed")
	}
	if rateInfo.Limit != 100 {
		t.Errorf("Expected API limit 100, got %d", rateInfo.Limit)
	}
	if rateInfo.Remaining != 100-7 {
		t.Errorf("Expected remaining %d, got %d", 100-7, rateInfo.Remaining)
	}
}

func TestLimiter_APIBudgetExhausted(t *testing.T) {
	limiter := NewLimiter(testConfig(DefaultEndpointConfigs()...))
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.AllowAt("10.0.0.2", "/api/token", "GET", testStart); !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
	}

	allowed, rateInfo := limiter.AllowAt("10.0.0.2", "/api/detect", "POST", testStart)
	if allowed {
		t.Fatal("Expected request 101 to be denied")
	}
	if rateInfo.Message != "Too many requests, please try again later" {
		t.Errorf("Unexpected message %q", rateInfo.Message)
	}
	if rateInfo.Retry != "15 minutes" {
		t.Errorf("Expected retry hint '15 minutes', got %q", rateInfo.Retry)
	}
}

func TestLimiter_UnlimitedPaths(t *testing.T) {
	limiter := NewLimiter(testConfig(DefaultEndpointConfigs()...))
	defer limiter.Stop()

	for _, path := range []string{"/", "/health"} {
		for i := 0; i < 500; i++ {
			allowed, rateInfo := limiter.AllowAt("127.0.0.1", path, "GET", testStart)
			if !allowed {
				t.Fatalf("Expected %s to be unlimited", path)
			}
			if rateInfo.Limit != 0 {
				t.Errorf("Expected limit 0 for %s, got %d", path, rateInfo.Limit)
			}
		}
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := testConfig(EndpointConfig{Path: "/api/", Limit: 1, Window: time.Minute})
	config.Whitelist = map[string]bool{"127.0.0.1": true}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Whitelisted IP should always be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/api/detect", "POST")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := testConfig(EndpointConfig{Path: "/api/", Limit: 1000, Window: time.Minute})
	config.Blacklist = map[string]bool{"192.168.1.1": true}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Blacklisted IP should always be denied, even on unlimited paths
	if allowed, _ := limiter.Allow("192.168.1.1", "/api/detect", "POST"); allowed {
		t.Error("Expected blacklisted request to be denied")
	}
	if allowed, _ := limiter.Allow("192.168.1.1", "/health", "GET"); allowed {
		t.Error("Expected blacklisted health check to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	// When disabled, all requests should be allowed
	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/api/contact", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{Path: "/api/", Limit: 1, Window: time.Minute}))
	defer limiter.Stop()

	if allowed, _ := limiter.AllowAt("10.0.0.1", "/api/detect", "POST", testStart); !allowed {
		t.Fatal("Expected first client to be allowed")
	}
	if allowed, _ := limiter.AllowAt("10.0.0.1", "/api/detect", "POST", testStart); allowed {
		t.Fatal("Expected first client to be limited")
	}
	if allowed, _ := limiter.AllowAt("10.0.0.2", "/api/detect", "POST", testStart); !allowed {
		t.Error("Expected second client to have its own bucket")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{Path: "/api/", Limit: 100, Window: time.Hour}))
	defer limiter.Stop()

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	// Make 200 concurrent requests (should only allow 100)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.AllowAt("127.0.0.1", "/api/detect", "POST", testStart)
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_CleanupBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{Path: "/api/", Limit: 10, Window: time.Minute}))
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		limiter.AllowAt(clientID, "/api/detect", "POST", testStart)
	}
	// Half the clients come back later
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		limiter.AllowAt(clientID, "/api/detect", "POST", testStart.Add(50*time.Second))
	}

	limiter.cleanupBuckets(testStart.Add(90 * time.Second))

	limiter.mu.Lock()
	remaining := len(limiter.buckets)
	limiter.mu.Unlock()
	if remaining != 5 {
		t.Errorf("Expected 5 buckets after cleanup, got %d", remaining)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	if limiter == nil {
		t.Fatal("Expected limiter to be created with nil config")
	}

	// Should use the default API limits
	allowed, rateInfo := limiter.Allow("127.0.0.1", "/api/detect", "POST")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 100 {
		t.Errorf("Expected default limit 100, got %d", rateInfo.Limit)
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, CleanupInterval: time.Minute})
	limiter.Stop()
	limiter.Stop()
}

func TestMatchEndpoints(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path   string
		method string
		want   []string
	}{
		{path: "/api/detect", method: "POST", want: []string{"/api/"}},
		{path: "/api/token", method: "GET", want: []string{"/api/"}},
		{path: "/api/contact", method: "POST", want: []string{"/api/", "/api/contact"}},
		{path: "/api/contact", method: "GET", want: []string{"/api/"}},
		{path: "/health", method: "GET", want: nil},
		{path: "/api", method: "GET", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			matches := MatchEndpoints(tt.path, tt.method, configs)
			if len(matches) != len(tt.want) {
				t.Fatalf("Expected %d matches, got %d", len(tt.want), len(matches))
			}
			for i, m := range matches {
				if m.Path != tt.want[i] {
					t.Errorf("Match %d: expected %s, got %s", i, tt.want[i], m.Path)
				}
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_API_LIMIT", "50")
	t.Setenv("RATE_LIMIT_CONTACT_WINDOW", "30m")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,")

	config := LoadConfig()
	if !config.Enabled {
		t.Fatal("Expected rate limiting to be enabled by default")
	}
	if len(config.Whitelist) != 2 || !config.Whitelist["10.0.0.2"] {
		t.Errorf("Unexpected whitelist %v", config.Whitelist)
	}

	api, contact := config.EndpointConfigs[0], config.EndpointConfigs[1]
	if api.Limit != 50 || api.Window != 15*time.Minute {
		t.Errorf("Unexpected API config %+v", api)
	}
	if contact.Limit != 5 || contact.Window != 30*time.Minute || contact.Retry != "30 minutes" {
		t.Errorf("Unexpected contact config %+v", contact)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	if LoadConfig().Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}

func TestHumanDuration(t *testing.T) {
	tests := map[time.Duration]string{
		time.Hour:        "1 hour",
		2 * time.Hour:    "2 hours",
		15 * time.Minute: "15 minutes",
		time.Minute:      "1 minute",
		90 * time.Second: "1m30s",
	}
	for d, want := range tests {
		if got := humanDuration(d); got != want {
			t.Errorf("humanDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
