package domain

import "context"

// AccessLevel is the coarse role a tenant/sponsor binding grants a user.
type AccessLevel string

const (
	AccessViewer            AccessLevel = "viewer"
	AccessEditor            AccessLevel = "editor"
	AccessAdmin             AccessLevel = "admin"
	AccessLeadInsightsAdmin AccessLevel = "leadinsights_admin"
)

// Claims is the decoded payload of a bearer token. Subject and TenantID are
// resolved from the claim set plus request headers; header tenant wins but
// must agree with the claim when both are present.
type Claims struct {
	Subject   string
	TenantID  string
	RawClaims map[string]any
}

// TokenVerifier turns a bearer token into Claims. Implementations decide
// whether the token signature is actually verified; the engine treats the
// verifier as the single trust boundary for token handling.
type TokenVerifier interface {
	Verify(ctx context.Context, bearerToken string) (Claims, error)
}

// AuthContext is the immutable outcome of a successful authorization. It is
// assembled once per request and handed to downstream handlers as a value;
// nothing in the authorization path mutates it afterwards.
type AuthContext struct {
	UserID          int64
	Subject         string
	TenantID        string
	SponsorID       string
	AccessLevel     AccessLevel
	Campaigns       []string
	LicenseModelIDs []string

	// AllCampaigns marks the full-access sentinel granted to
	// leadinsights_admin; Campaigns is not populated in that case.
	AllCampaigns bool
}

// CanAccessCampaign reports whether the context covers the given campaign.
func (a AuthContext) CanAccessCampaign(campaignID string) bool {
	if a.AllCampaigns {
		return true
	}
	for _, id := range a.Campaigns {
		if id == campaignID {
			return true
		}
	}
	return false
}

// AccessPolicyInput is the document handed to the optional rego access policy.
type AccessPolicyInput struct {
	Subject     string `json:"subject"`
	TenantID    string `json:"tenant_id"`
	SponsorID   string `json:"sponsor_id"`
	AccessLevel string `json:"access_level"`
	Path        string `json:"path"`
	Method      string `json:"method"`
}

type AccessPolicyDeny struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type AccessPolicyResult struct {
	Allow bool               `json:"allow"`
	Deny  []AccessPolicyDeny `json:"deny,omitempty"`
}

// AccessPolicy is an optional data-driven veto evaluated after the built-in
// permission layers have passed.
type AccessPolicy interface {
	Evaluate(ctx context.Context, input AccessPolicyInput) (AccessPolicyResult, error)
}
