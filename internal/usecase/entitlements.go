package usecase

import (
	"context"
	"sort"

	"insightd/internal/domain"
)

// EntitlementResolver computes the set of campaigns a user can reach under a
// sponsor: direct customer grants intersected with the sponsor's campaigns,
// plus sponsor campaigns whose classification matches a client entitlement.
type EntitlementResolver struct {
	entitlements EntitlementRepository
	campaigns    CampaignRepository
}

func NewEntitlementResolver(entitlements EntitlementRepository, campaigns CampaignRepository) *EntitlementResolver {
	return &EntitlementResolver{entitlements: entitlements, campaigns: campaigns}
}

// ResolveCampaigns returns the deduplicated, sorted union. An empty result
// is valid and means no campaign-scoped access; the result is always a
// subset of the campaigns owned by the sponsor.
func (r *EntitlementResolver) ResolveCampaigns(ctx context.Context, userID int64, tenantID, sponsorID string) ([]string, error) {
	owned, err := r.campaigns.ListOwnedBySponsor(ctx, tenantID, sponsorID)
	if err != nil {
		return nil, storeErr("list sponsor campaigns", err)
	}
	if len(owned) == 0 {
		return nil, nil
	}
	ownedByID := make(map[string]domain.Campaign, len(owned))
	for _, c := range owned {
		ownedByID[c.ID] = c
	}

	accessible := make(map[string]bool)

	direct, err := r.entitlements.ListCustomerCampaignIDs(ctx, userID, tenantID, sponsorID)
	if err != nil {
		return nil, storeErr("list customer entitlements", err)
	}
	for _, id := range direct {
		if _, ok := ownedByID[id]; ok {
			accessible[id] = true
		}
	}

	client, err := r.entitlements.ListClientEntitlements(ctx, userID, tenantID)
	if err != nil {
		return nil, storeErr("list client entitlements", err)
	}
	for _, e := range client {
		if e.DeletedOn != nil {
			continue
		}
		for id, c := range ownedByID {
			if accessible[id] {
				continue
			}
			if e.Matches(c) {
				accessible[id] = true
			}
		}
	}

	if len(accessible) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(accessible))
	for id := range accessible {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
