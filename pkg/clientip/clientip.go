package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are the proxy headers consulted when none are configured,
// highest priority first.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the client address of r. The given headers are checked
// in order; for comma-separated values such as X-Forwarded-For the first
// valid address wins. RemoteAddr is the fallback. It returns "" when no valid
// address is found.
func FromRequest(r *http.Request, headers ...string) string {
	for _, h := range headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := normalize(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request and stores it in
// the request context.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromRequest(r, headers...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ip)))
		})
	}
}

// LoggerExtractor adds a "client_ip" attribute to records logged with a
// request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
