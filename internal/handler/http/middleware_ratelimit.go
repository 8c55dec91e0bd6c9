package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/brightsmile/membership-api/internal/logger"
	"github.com/brightsmile/membership-api/internal/utils"
	"github.com/brightsmile/membership-api/models"
)

// withRateLimit enforces the per-identity submission quota on the submit
// endpoint. Every response, admitted or denied, carries the X-RateLimit-*
// headers; denials answer 429 with a Retry-After hint.
//
// The limiter key is the client's network address. Requests whose address
// cannot be determined share the empty-key window rather than bypassing the
// limiter.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		result := h.limiter.Allow(utils.ClientIP(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.Reset.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(time.Until(result.Reset).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			log.Warn().
				Str("client_ip", utils.ClientIP(r)).
				Msg("submission rate limit exceeded")

			utils.WriteJSON(w, models.ErrorResponse{
				Error: "Too many submission attempts. Please try again later.",
			}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
