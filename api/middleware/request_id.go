package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// maxRequestIDLen guards the log index against oversized caller-supplied ids.
const maxRequestIDLen = 64

// RequestID tags every request with an id, honoring one supplied by the
// caller so a retrying client keeps its correlation id across attempts.
// The id is echoed back in the response header and stamped on the request
// logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLen {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
