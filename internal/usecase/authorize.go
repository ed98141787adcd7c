package usecase

import (
	"context"
	"strings"

	"insightd/internal/domain"
)

// AuthRequest carries the request attributes the engine needs. Token is the
// raw bearer token with the scheme already stripped; TenantHint and
// SponsorHint come from the tenant_id and sponsor_id headers.
type AuthRequest struct {
	Token       string
	TenantHint  string
	SponsorHint string
	Path        string
	Method      string
}

// Engine sequences the permission layers into a single terminal decision:
// token claims, tenant/sponsor binding, domain registration and licensing,
// entitlements, and the optional access policy. Every stage is fail-fast and
// fail-closed; no partially populated context ever escapes.
type Engine struct {
	verifier     domain.TokenVerifier
	access       *AccessLevelResolver
	domains      *DomainAccessValidator
	entitlements *EntitlementResolver
	policy       domain.AccessPolicy
	apiPrefix    string
}

type EngineDeps struct {
	Verifier     domain.TokenVerifier
	Users        UserRepository
	Bindings     BindingRepository
	Domains      FeatureDomainRepository
	Licenses     LicenseRepository
	Entitlements EntitlementRepository
	Campaigns    CampaignRepository
	Policy       domain.AccessPolicy
	APIPrefix    string
}

func NewEngine(deps EngineDeps) *Engine {
	return &Engine{
		verifier:     deps.Verifier,
		access:       NewAccessLevelResolver(deps.Users, deps.Bindings),
		domains:      NewDomainAccessValidator(deps.Domains, deps.Licenses),
		entitlements: NewEntitlementResolver(deps.Entitlements, deps.Campaigns),
		policy:       deps.Policy,
		apiPrefix:    deps.APIPrefix,
	}
}

// Authorize runs the full decision chain for one request and returns the
// immutable authorization context on success.
func (e *Engine) Authorize(ctx context.Context, req AuthRequest) (domain.AuthContext, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return domain.AuthContext{}, domain.ErrMissingToken
	}
	claims, err := e.verifier.Verify(ctx, token)
	if err != nil {
		return domain.AuthContext{}, err
	}

	tenantID, err := resolveTenant(claims, req.TenantHint)
	if err != nil {
		return domain.AuthContext{}, err
	}
	if claims.Subject == "" {
		return domain.AuthContext{}, domain.ErrMissingClaims
	}

	access, err := e.access.Resolve(ctx, claims.Subject, tenantID, req.SponsorHint)
	if err != nil {
		return domain.AuthContext{}, err
	}

	normalized := NormalizePath(StripAPIPrefix(req.Path, e.apiPrefix))

	authCtx := domain.AuthContext{
		UserID:      access.UserID,
		Subject:     claims.Subject,
		TenantID:    tenantID,
		SponsorID:   access.SponsorID,
		AccessLevel: access.AccessLevel,
	}

	if access.AccessLevel == domain.AccessLeadInsightsAdmin {
		// Full-access role: domain and entitlement checks are bypassed and
		// the context carries the all-campaigns sentinel.
		authCtx.AllCampaigns = true
	} else {
		modelIDs, err := e.domains.Validate(ctx, tenantID, access.SponsorID, normalized, req.Method)
		if err != nil {
			return domain.AuthContext{}, err
		}
		authCtx.LicenseModelIDs = modelIDs

		campaigns, err := e.entitlements.ResolveCampaigns(ctx, access.UserID, tenantID, access.SponsorID)
		if err != nil {
			return domain.AuthContext{}, err
		}
		authCtx.Campaigns = campaigns
	}

	if e.policy != nil {
		result, err := e.policy.Evaluate(ctx, domain.AccessPolicyInput{
			Subject:     claims.Subject,
			TenantID:    tenantID,
			SponsorID:   access.SponsorID,
			AccessLevel: string(access.AccessLevel),
			Path:        normalized,
			Method:      req.Method,
		})
		if err != nil || !result.Allow {
			// A configured policy that cannot be evaluated denies rather
			// than silently admitting.
			return domain.AuthContext{}, domain.ErrAccessDenied
		}
	}

	return authCtx, nil
}

// resolveTenant applies the header-over-claim precedence: the header wins
// but must agree with a tenant claim when both are present.
func resolveTenant(claims domain.Claims, hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint != "" {
		if claims.TenantID != "" && claims.TenantID != hint {
			return "", domain.ErrInvalidToken
		}
		return hint, nil
	}
	if claims.TenantID == "" {
		return "", domain.ErrMissingClaims
	}
	return claims.TenantID, nil
}
