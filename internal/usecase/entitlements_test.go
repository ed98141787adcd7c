package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"insightd/internal/domain"
)

func testCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{owned: map[string][]domain.Campaign{
		"tenant_001|sponsor_001": {
			{ID: "campaign_001", Division: "div_a", Family: "fam_x", Brand: "brand_1"},
			{ID: "campaign_002", Division: "div_a", Family: "fam_y", Brand: "brand_2"},
			{ID: "campaign_003", Division: "div_b", Family: "fam_x", Brand: "brand_1"},
		},
		"tenant_001|sponsor_002": {
			{ID: "campaign_900", Division: "div_a", Family: "fam_x", Brand: "brand_1"},
		},
	}}
}

func TestEntitlementResolver(t *testing.T) {
	ctx := context.Background()
	campaigns := testCampaignRepo()

	t.Run("direct grants intersect sponsor ownership", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{
			customer: []domain.CustomerEntitlement{
				{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_001", Status: "active"},
				// Grant to a campaign the sponsor does not own.
				{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_900", Status: "active"},
				// Inactive grant.
				{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_002", Status: "inactive"},
			},
		}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"campaign_001"}) {
			t.Fatalf("unexpected campaigns: %v", got)
		}
	})

	t.Run("client entitlement matches classification", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{
			client: []domain.ClientEntitlement{
				{UserID: 1, TenantID: "tenant_001", Division: "div_a"},
			},
		}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"campaign_001", "campaign_002"}) {
			t.Fatalf("unexpected campaigns: %v", got)
		}
	})

	t.Run("union deduplicates", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{
			customer: []domain.CustomerEntitlement{
				{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_001", Status: "active"},
			},
			client: []domain.ClientEntitlement{
				{UserID: 1, TenantID: "tenant_001", Brand: "brand_1"},
			},
		}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"campaign_001", "campaign_003"}) {
			t.Fatalf("unexpected campaigns: %v", got)
		}
	})

	t.Run("result is subset of sponsor ownership", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{
			customer: []domain.CustomerEntitlement{
				{UserID: 1, TenantID: "tenant_001", SponsorID: "sponsor_001", CampaignID: "campaign_001", Status: "active"},
			},
			client: []domain.ClientEntitlement{
				{UserID: 1, TenantID: "tenant_001", Division: "div_a"},
				{UserID: 1, TenantID: "tenant_001", Family: "fam_x"},
			},
		}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		owned := map[string]bool{"campaign_001": true, "campaign_002": true, "campaign_003": true}
		for _, id := range got {
			if !owned[id] {
				t.Fatalf("campaign %s not owned by sponsor", id)
			}
		}
	})

	t.Run("empty set is valid", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty set, got %v", got)
		}
	})

	t.Run("blank classification never matches", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{
			client: []domain.ClientEntitlement{
				{UserID: 1, TenantID: "tenant_001"},
			},
		}, campaigns)
		got, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty set for blank entitlement, got %v", got)
		}
	})

	t.Run("store failure maps to unavailable", func(t *testing.T) {
		resolver := NewEntitlementResolver(&fakeEntitlementRepo{err: errStoreDown}, campaigns)
		_, err := resolver.ResolveCampaigns(ctx, 1, "tenant_001", "sponsor_001")
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("want ErrStoreUnavailable, got %v", err)
		}
	})
}
