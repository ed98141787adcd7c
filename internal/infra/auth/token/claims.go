// Package token maps bearer-token payloads onto domain claims. The claim
// names follow the identity provider's conventions: the subject arrives as
// "username" (falling back to "sub") and the tenant as "tenant_id" (falling
// back to "client_id").
package token

import (
	"insightd/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func ClaimsFromMap(m jwt.MapClaims) domain.Claims {
	claims := domain.Claims{RawClaims: m}
	if v, _ := m["username"].(string); v != "" {
		claims.Subject = v
	} else if v, _ := m["sub"].(string); v != "" {
		claims.Subject = v
	}
	if v, _ := m["tenant_id"].(string); v != "" {
		claims.TenantID = v
	} else if v, _ := m["client_id"].(string); v != "" {
		claims.TenantID = v
	}
	return claims
}
