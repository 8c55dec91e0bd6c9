package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the submitting client's network address from a request.
//
// Lookup order:
//  1. the first entry of "X-Forwarded-For" (set by the reverse proxy);
//  2. "X-Real-IP";
//  3. the connection's RemoteAddr.
//
// The candidate is validated with net.ParseIP. When no well-formed address
// can be found the function returns the empty string — callers record the
// address as absent, never as a placeholder value.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}

	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		if ip := net.ParseIP(real); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(strings.TrimSpace(host)); ip != nil {
		return ip.String()
	}

	return ""
}
