package usecase

import (
	"context"
	"errors"
	"testing"

	"insightd/internal/domain"
)

func testEngineDeps(verifier domain.TokenVerifier) EngineDeps {
	return EngineDeps{
		Verifier: verifier,
		Users: &fakeUserRepo{users: map[string]domain.User{
			"user_cognito_001": {ID: 1, SubjectID: "user_cognito_001"},
			"user_cognito_002": {ID: 2, SubjectID: "user_cognito_002"},
		}},
		Bindings: &fakeBindingRepo{bindings: []domain.SponsorBinding{
			{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", AccessLevel: domain.AccessLeadInsightsAdmin, Status: domain.BindingAccepted},
			{UserID: 2, TenantID: "tenant_001", SponsorID: "sponsor_001", AccessLevel: domain.AccessViewer, Status: domain.BindingAccepted},
		}},
		Domains: &fakeDomainRepo{domains: []domain.FeatureDomain{
			{ID: 1, ApplicationID: 10, TenantID: "tenant_001", LicenseModelID: "lm_insights", Domain: "/campaigns/{id}/attendees", Method: "GET"},
		}},
		Licenses: &fakeLicenseRepo{licenses: []domain.License{
			{ID: 1, LicenseModelID: "lm_insights", ApplicationID: 10, TenantID: "tenant_001", SponsorID: "sponsor_001", Status: domain.LicenseActive},
		}},
		Entitlements: &fakeEntitlementRepo{customer: []domain.CustomerEntitlement{
			{UserID: 2, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_001", Status: "active"},
		}},
		Campaigns: testCampaignRepo(),
		APIPrefix: "/api/v1",
	}
}

func TestEngineAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing token", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{}))
		_, err := engine.Authorize(ctx, AuthRequest{Path: "/api/v1/campaigns", Method: "GET"})
		if !errors.Is(err, domain.ErrMissingToken) {
			t.Fatalf("want ErrMissingToken, got %v", err)
		}
	})

	t.Run("verifier errors pass through", func(t *testing.T) {
		for _, want := range []error{domain.ErrInvalidToken, domain.ErrExpiredToken} {
			engine := NewEngine(testEngineDeps(&staticVerifier{err: want}))
			_, err := engine.Authorize(ctx, AuthRequest{Token: "x", Path: "/api/v1/campaigns", Method: "GET"})
			if !errors.Is(err, want) {
				t.Fatalf("want %v, got %v", want, err)
			}
		}
	})

	t.Run("tenant from header when claim absent", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001"}}))
		got, err := engine.Authorize(ctx, AuthRequest{
			Token:      "x",
			TenantHint: "tenant_001",
			Path:       "/api/v1/campaigns/campaign_001/attendees",
			Method:     "GET",
		})
		if err != nil {
			t.Fatalf("authorize: %v", err)
		}
		if got.TenantID != "tenant_001" {
			t.Fatalf("unexpected tenant: %s", got.TenantID)
		}
	})

	t.Run("no tenant anywhere", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001"}}))
		_, err := engine.Authorize(ctx, AuthRequest{Token: "x", Path: "/api/v1/campaigns", Method: "GET"})
		if !errors.Is(err, domain.ErrMissingClaims) {
			t.Fatalf("want ErrMissingClaims, got %v", err)
		}
	})

	t.Run("header and claim must agree", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001", TenantID: "tenant_002"}}))
		_, err := engine.Authorize(ctx, AuthRequest{Token: "x", TenantHint: "tenant_001", Path: "/api/v1/campaigns", Method: "GET"})
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("want ErrInvalidToken, got %v", err)
		}
	})

	t.Run("admin bypasses domain and entitlement checks", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001", TenantID: "tenant_001"}}))
		got, err := engine.Authorize(ctx, AuthRequest{
			Token:  "x",
			Path:   "/api/v1/unregistered/route",
			Method: "DELETE",
		})
		if err != nil {
			t.Fatalf("authorize: %v", err)
		}
		if !got.AllCampaigns {
			t.Fatal("expected all-campaigns sentinel")
		}
		if !got.CanAccessCampaign("campaign_whatever") {
			t.Fatal("sentinel should cover any campaign")
		}
	})

	t.Run("viewer resolves campaigns through registered domain", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_002", TenantID: "tenant_001"}}))
		got, err := engine.Authorize(ctx, AuthRequest{
			Token:  "x",
			Path:   "/api/v1/campaigns/campaign_001/attendees",
			Method: "GET",
		})
		if err != nil {
			t.Fatalf("authorize: %v", err)
		}
		if got.AllCampaigns {
			t.Fatal("viewer must not get the sentinel")
		}
		if !got.CanAccessCampaign("campaign_001") {
			t.Fatal("expected campaign_001 in accessible set")
		}
		if got.CanAccessCampaign("campaign_003") {
			t.Fatal("campaign_003 must not be accessible")
		}
		if len(got.LicenseModelIDs) != 1 || got.LicenseModelIDs[0] != "lm_insights" {
			t.Fatalf("unexpected license models: %v", got.LicenseModelIDs)
		}
	})

	t.Run("viewer denied on unregistered domain", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_002", TenantID: "tenant_001"}}))
		_, err := engine.Authorize(ctx, AuthRequest{
			Token:  "x",
			Path:   "/api/v1/reports",
			Method: "GET",
		})
		if !errors.Is(err, domain.ErrDomainNotRegistered) {
			t.Fatalf("want ErrDomainNotRegistered, got %v", err)
		}
	})

	t.Run("policy veto denies", func(t *testing.T) {
		deps := testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001", TenantID: "tenant_001"}})
		deps.Policy = &staticPolicy{result: domain.AccessPolicyResult{Allow: false, Deny: []domain.AccessPolicyDeny{{Code: "BLOCKED"}}}}
		engine := NewEngine(deps)
		_, err := engine.Authorize(ctx, AuthRequest{Token: "x", Path: "/api/v1/campaigns/1/attendees", Method: "GET"})
		if !errors.Is(err, domain.ErrAccessDenied) {
			t.Fatalf("want ErrAccessDenied, got %v", err)
		}
	})

	t.Run("policy error fails closed", func(t *testing.T) {
		deps := testEngineDeps(&staticVerifier{claims: domain.Claims{Subject: "user_cognito_001", TenantID: "tenant_001"}})
		deps.Policy = &staticPolicy{err: errStoreDown}
		engine := NewEngine(deps)
		_, err := engine.Authorize(ctx, AuthRequest{Token: "x", Path: "/api/v1/campaigns/1/attendees", Method: "GET"})
		if !errors.Is(err, domain.ErrAccessDenied) {
			t.Fatalf("want ErrAccessDenied, got %v", err)
		}
	})

	t.Run("no context alongside an error", func(t *testing.T) {
		engine := NewEngine(testEngineDeps(&staticVerifier{err: domain.ErrInvalidToken}))
		got, err := engine.Authorize(ctx, AuthRequest{Token: "x", Path: "/api/v1/campaigns", Method: "GET"})
		if err == nil {
			t.Fatal("expected error")
		}
		if got.UserID != 0 || got.TenantID != "" || len(got.Campaigns) != 0 || got.AllCampaigns {
			t.Fatalf("context leaked alongside error: %+v", got)
		}
	})
}
