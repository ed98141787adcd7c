package http

import (
	"net/http"
	"strconv"
	"time"

	"insightd/internal/domain"

	"github.com/gin-gonic/gin"
)

// enforceRateLimit runs before token verification, so the key is the
// client address rather than the token subject. A forged token still
// costs the caller budget.
func (s *Server) enforceRateLimit(c *gin.Context) bool {
	if s.rateLimiter == nil || s.rateLimitRequests <= 0 {
		return true
	}
	key := "client:" + c.ClientIP()

	decision, err := s.rateLimiter.Allow(c.Request.Context(), key, s.rateLimitRequests, s.rateLimitWindow)
	if err != nil {
		if s.rateLimitFailClosed {
			writeAuthError(c, http.StatusTooManyRequests, "rate limiter unavailable",
				errorDetail{Field: "server", Message: "rate limiter unavailable", Code: "RATE_LIMIT_UNAVAILABLE"})
			return false
		}
		s.log.WithError(err).Warn("rate limiter unavailable, admitting request")
		return true
	}
	writeRateLimitHeaders(c, decision)
	if !decision.Allowed {
		writeAuthError(c, http.StatusTooManyRequests, "rate limit exceeded",
			errorDetail{Field: "client", Message: "too many requests", Code: "RATE_LIMITED"})
		return false
	}
	return true
}

func writeRateLimitHeaders(c *gin.Context, decision domain.RateLimitDecision) {
	if decision.Limit > 0 {
		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
	}
	if decision.Remaining >= 0 {
		c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
	}
	if !decision.ResetAt.IsZero() {
		c.Header("RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		if !decision.Allowed {
			retryAfter := int64(time.Until(decision.ResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
		}
	}
}
