package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	r := NewInMemoryRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !r.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if r.Allow("10.0.0.1") {
		t.Error("request over the limit should be denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	r := NewInMemoryRateLimiter(1, time.Minute)
	if !r.Allow("a") {
		t.Fatal("first request for a should pass")
	}
	if !r.Allow("b") {
		t.Error("b should not share a's bucket")
	}
	if r.Allow("a") {
		t.Error("a is over its limit")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	r := NewInMemoryRateLimiter(1, 10*time.Millisecond)
	if !r.Allow("k") {
		t.Fatal("first request should pass")
	}
	if r.Allow("k") {
		t.Fatal("second request inside window should be denied")
	}
	time.Sleep(15 * time.Millisecond)
	if !r.Allow("k") {
		t.Error("request after window expiry should be allowed")
	}
}
