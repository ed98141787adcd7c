package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"insightd/internal/domain"
	"insightd/internal/usecase"

	"github.com/gin-gonic/gin"
)

const authContextKey = "auth_context"

// Paths served without a token. The root and health endpoints must stay
// reachable for probes even when the store or verifier is down.
var exemptPaths = map[string]bool{
	"/":              true,
	"/health":        true,
	"/healthz":       true,
	"/api/v1/health": true,
}

type errorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorEnvelope struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	ErrorCode string        `json:"error_code"`
	Details   []errorDetail `json:"details"`
	Timestamp string        `json:"timestamp"`
}

// authorize runs the full decision chain before any protected handler.
// The resulting context is attached to the request; handlers never see a
// request that failed authorization.
func (s *Server) authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if exemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}
		if s.authInitErr != nil {
			writeAuthError(c, http.StatusInternalServerError, "authorization unavailable",
				errorDetail{Field: "server", Message: "auth configuration error", Code: "AUTH_CONFIG_ERROR"})
			return
		}
		if s.engine == nil {
			// AUTH_MODE=none, local development only.
			c.Next()
			return
		}
		if !s.enforceRateLimit(c) {
			return
		}

		authCtx, err := s.engine.Authorize(c.Request.Context(), usecase.AuthRequest{
			Token:       extractBearerToken(c.GetHeader("Authorization")),
			TenantHint:  c.GetHeader("tenant_id"),
			SponsorHint: c.GetHeader("sponsor_id"),
			Path:        c.Request.URL.Path,
			Method:      c.Request.Method,
		})
		if err != nil {
			s.log.WithError(err).WithField("path", c.Request.URL.Path).Debug("authorization denied")
			status, detail := classifyAuthError(err)
			writeAuthError(c, status, "authorization failed", detail)
			return
		}
		c.Set(authContextKey, authCtx)
		c.Next()
	}
}

// classifyAuthError maps engine errors to a status and a detail entry.
// Store outages are the only 5xx; everything else is a caller problem.
func classifyAuthError(err error) (int, errorDetail) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable, errorDetail{
			Field: "server", Message: "authorization store unavailable", Code: "STORE_UNAVAILABLE",
		}
	}
	for _, m := range authErrorMap {
		if errors.Is(err, m.err) {
			return http.StatusUnauthorized, errorDetail{Field: m.field, Message: m.message, Code: m.code}
		}
	}
	return http.StatusUnauthorized, errorDetail{
		Field: "authorization", Message: "access denied", Code: "ACCESS_DENIED",
	}
}

var authErrorMap = []struct {
	err     error
	field   string
	message string
	code    string
}{
	{domain.ErrMissingToken, "authorization", "bearer token is required", "MISSING_TOKEN"},
	{domain.ErrInvalidToken, "authorization", "token is invalid", "INVALID_TOKEN"},
	{domain.ErrExpiredToken, "authorization", "token is expired", "EXPIRED_TOKEN"},
	{domain.ErrMissingClaims, "authorization", "required claims are missing", "MISSING_CLAIMS"},
	{domain.ErrUserNotFound, "authorization", "user is not registered", "USER_NOT_FOUND"},
	{domain.ErrAmbiguousSponsor, "sponsor_id", "sponsor binding is ambiguous", "AMBIGUOUS_SPONSOR"},
	{domain.ErrAccessRevoked, "authorization", "access has been revoked", "ACCESS_REVOKED"},
	{domain.ErrDomainNotRegistered, "path", "domain is not registered", "DOMAIN_NOT_REGISTERED"},
	{domain.ErrLicenseInactive, "path", "no active license covers this domain", "LICENSE_INACTIVE"},
	{domain.ErrAccessDenied, "authorization", "access denied", "ACCESS_DENIED"},
}

func writeAuthError(c *gin.Context, status int, message string, details ...errorDetail) {
	c.AbortWithStatusJSON(status, errorEnvelope{
		Success:   false,
		Message:   message,
		ErrorCode: "AUTH_ERROR",
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func extractBearerToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(value), "bearer ") {
		return ""
	}
	return strings.TrimSpace(value[len("bearer "):])
}

func authContextFrom(c *gin.Context) (domain.AuthContext, bool) {
	raw, ok := c.Get(authContextKey)
	if !ok {
		return domain.AuthContext{}, false
	}
	authCtx, ok := raw.(domain.AuthContext)
	return authCtx, ok
}
