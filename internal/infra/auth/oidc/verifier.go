// Package oidc verifies RS256 bearer tokens against an OIDC issuer's JWKS.
// It is the production implementation of domain.TokenVerifier; the insecure
// decoder in infra/auth/token exists only to reproduce the legacy behavior.
package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"insightd/internal/config"
	"insightd/internal/domain"
	"insightd/internal/infra/auth/token"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultHTTPTimeout = 5 * time.Second
	discoveryPath      = "/.well-known/openid-configuration"
)

type Verifier struct {
	issuer    string
	audience  string
	clockSkew time.Duration
	jwks      *jwksCache
}

type Option func(*Verifier)

func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		if client != nil {
			v.jwks.httpClient = client
		}
	}
}

func NewVerifier(cfg config.Config, opts ...Option) (*Verifier, error) {
	issuer := strings.TrimSpace(cfg.OIDCIssuerURL)
	if issuer == "" {
		return nil, errors.New("OIDC_ISSUER_URL is required")
	}
	client := &http.Client{Timeout: defaultHTTPTimeout}
	jwksURL := strings.TrimSpace(cfg.OIDCJWKSURL)
	if jwksURL == "" {
		discovered, err := discoverJWKSURL(context.Background(), client, issuer)
		if err != nil {
			return nil, err
		}
		jwksURL = discovered
	}
	v := &Verifier{
		issuer:    issuer,
		audience:  strings.TrimSpace(cfg.OIDCAudience),
		clockSkew: time.Duration(cfg.OIDCClockSkewSecs) * time.Second,
		jwks:      newJWKSCache(jwksURL, client),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, bearerToken string) (domain.Claims, error) {
	tokenString := strings.TrimSpace(bearerToken)
	if tokenString == "" {
		return domain.Claims{}, domain.ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	parser := jwt.NewParser(opts...)

	mapClaims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, mapClaims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return v.jwks.getKey(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, domain.ErrExpiredToken
		}
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return token.ClaimsFromMap(mapClaims), nil
}

func discoverJWKSURL(ctx context.Context, client *http.Client, issuer string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(issuer, "/")+discoveryPath, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New("oidc discovery failed")
	}
	var payload struct {
		JWKSURI string `json:"jwks_uri"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.JWKSURI == "" {
		return "", errors.New("oidc discovery missing jwks_uri")
	}
	return payload.JWKSURI, nil
}

var _ domain.TokenVerifier = (*Verifier)(nil)
