package middleware

import (
	"context"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// Allower decides whether a client may proceed.
type Allower interface {
	Allow(client string) bool
}

// Banner tracks misbehaving clients. A nil Banner disables bans.
type Banner interface {
	IsBanned(ctx context.Context, client string) (bool, error)
	Strike(ctx context.Context, client, route string) (bool, error)
}

func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects banned clients with 403 and clients over their limit
// with 429. Each 429 counts as a strike when a Banner is configured. Banner
// errors are logged and the request is let through.
func RateLimit(limiter Allower, banner Banner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientID(r)

			if banner != nil {
				banned, err := banner.IsBanned(r.Context(), client)
				if err != nil {
					zap.L().Error("ban check failed", zap.String("client", client), zap.Error(err))
				}
				if banned {
					http.Error(w, "client is temporarily banned", http.StatusForbidden)
					return
				}
			}

			if limiter.Allow(client) {
				next.ServeHTTP(w, r)
				return
			}

			if banner != nil {
				banned, err := banner.Strike(r.Context(), client, r.URL.Path)
				if err != nil {
					zap.L().Error("strike failed", zap.String("client", client), zap.Error(err))
				}
				if banned {
					http.Error(w, "client is temporarily banned", http.StatusForbidden)
					return
				}
			}

			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		})
	}
}
