package usecase

import (
	"context"

	"insightd/internal/domain"
)

type UserRepository interface {
	GetBySubjectID(ctx context.Context, subjectID string) (*domain.User, error)
}

type BindingRepository interface {
	ListByUserTenant(ctx context.Context, userID int64, tenantID string) ([]domain.SponsorBinding, error)
}

type FeatureDomainRepository interface {
	ListByDomainMethod(ctx context.Context, tenantID, domain, method string) ([]domain.FeatureDomain, error)
}

type LicenseRepository interface {
	// ListUsable returns active, non-deleted licenses held by the sponsor.
	ListUsable(ctx context.Context, tenantID, sponsorID string) ([]domain.License, error)
}

type EntitlementRepository interface {
	// ListCustomerCampaignIDs returns campaign ids directly granted to the
	// user under the sponsor, active grants only.
	ListCustomerCampaignIDs(ctx context.Context, userID int64, tenantID, sponsorID string) ([]string, error)
	ListClientEntitlements(ctx context.Context, userID int64, tenantID string) ([]domain.ClientEntitlement, error)
}

type CampaignRepository interface {
	// ListOwnedBySponsor returns the campaigns mapped to the sponsor through
	// the ownership table.
	ListOwnedBySponsor(ctx context.Context, tenantID, sponsorID string) ([]domain.Campaign, error)
}

type AttendeeRepository interface {
	ListByCampaign(ctx context.Context, campaignID string, offset, limit int) ([]domain.Attendee, error)
	CountByCampaign(ctx context.Context, campaignID string) (int64, error)
	GetByCampaignAndEmail(ctx context.Context, campaignID, email string) (*domain.Attendee, error)
}
