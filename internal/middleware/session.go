package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// SessionHeader carries the browsing session id in both directions.
const SessionHeader = "X-Session-ID"

const maxSessionIDLength = 64

type sessionKey struct{}

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id stored in ctx, or "" when there is none.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// Session resolves the browsing session of each request from the
// X-Session-ID header. Missing or malformed ids are replaced with one from
// newID. The id is echoed back in the response header and stored in the
// request context.
func Session(newID func() string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if !validSessionID(id) {
				if id != "" {
					logger.Debug().Str("path", r.URL.Path).Msg("malformed session id replaced")
				}
				id = newID()
			}

			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// validSessionID accepts ids of up to 64 letters, digits, '-' or '_'.
func validSessionID(id string) bool {
	if id == "" || len(id) > maxSessionIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
