package utils

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP_XForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("ClientIP = %q, want first forwarded address", got)
	}
}

func TestClientIP_XRealIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.7")

	if got := ClientIP(r); got != "198.51.100.7" {
		t.Fatalf("ClientIP = %q, want X-Real-IP value", got)
	}
}

func TestClientIP_RemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "192.0.2.4:51234"

	if got := ClientIP(r); got != "192.0.2.4" {
		t.Fatalf("ClientIP = %q, want RemoteAddr host", got)
	}
}

func TestClientIP_MalformedEverywhere(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.Header.Set("X-Forwarded-For", "unknown")
	r.Header.Set("X-Real-IP", "not-an-ip")
	r.RemoteAddr = "bogus"

	if got := ClientIP(r); got != "" {
		t.Fatalf("ClientIP = %q, want empty string for malformed input", got)
	}
}

func TestClientIP_IPv6(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "[2001:db8::1]:443"

	if got := ClientIP(r); got != "2001:db8::1" {
		t.Fatalf("ClientIP = %q, want IPv6 host", got)
	}
}
