package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 1 token per second

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	// Wait for 1 token to refill
	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}

	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_GetStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}

	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/skills"
	method := "GET"

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
	}

	allowed, info := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected request over limit to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected positive RetryAfter when denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/auth/login", "POST")
		if !allowed {
			t.Fatal("Disabled limiter must allow everything")
		}
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/skills", "GET")
		if !allowed {
			t.Fatal("Whitelisted client must not be limited")
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.66": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.66", "/skills", "GET")
	if allowed {
		t.Error("Blacklisted client must be denied")
	}
}

func TestLimiter_PerClientIsolation(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Exhaust one client's budget
	limiter.Allow("1.1.1.1", "/skills", "GET")
	limiter.Allow("1.1.1.1", "/skills", "GET")
	allowed, _ := limiter.Allow("1.1.1.1", "/skills", "GET")
	if allowed {
		t.Error("Expected first client to be limited")
	}

	// A different client is unaffected
	allowed, _ = limiter.Allow("2.2.2.2", "/skills", "GET")
	if !allowed {
		t.Error("Expected second client to be allowed")
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("10.0.0.%d", n)
			for j := 0; j < 20; j++ {
				limiter.Allow(clientID, "/skills", "GET")
			}
		}(i)
	}
	wg.Wait()
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantMatch bool
		wantLimit int
	}{
		{"/auth/register", "POST", true, 10},
		{"/auth/login", "POST", true, 20},
		{"/chat", "POST", true, 30},
		{"/matches/abc/accept", "POST", true, 100},
		{"/skills/abc", "DELETE", true, 100},
		{"/skills", "GET", false, 0},
		{"/health", "GET", true, 0}, // unlimited special case
	}

	for _, tt := range tests {
		got := MatchEndpoint(tt.path, tt.method, configs)
		if tt.wantMatch && got == nil {
			t.Errorf("MatchEndpoint(%q, %q) = nil, want match", tt.path, tt.method)
			continue
		}
		if !tt.wantMatch && got != nil {
			t.Errorf("MatchEndpoint(%q, %q) matched unexpectedly", tt.path, tt.method)
			continue
		}
		if got != nil && got.Limit != tt.wantLimit {
			t.Errorf("MatchEndpoint(%q, %q) limit = %d, want %d", tt.path, tt.method, got.Limit, tt.wantLimit)
		}
	}
}
