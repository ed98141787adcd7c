package usecase

import (
	"context"
	"errors"

	"insightd/internal/domain"
)

var errStoreDown = errors.New("connection refused")

type fakeUserRepo struct {
	users map[string]domain.User
	err   error
}

func (f *fakeUserRepo) GetBySubjectID(_ context.Context, subjectID string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[subjectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

type fakeBindingRepo struct {
	bindings []domain.SponsorBinding
	err      error
}

func (f *fakeBindingRepo) ListByUserTenant(_ context.Context, userID int64, tenantID string) ([]domain.SponsorBinding, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.SponsorBinding
	for _, b := range f.bindings {
		if b.UserID == userID && b.TenantID == tenantID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeDomainRepo struct {
	domains []domain.FeatureDomain
	err     error
}

func (f *fakeDomainRepo) ListByDomainMethod(_ context.Context, tenantID, path, method string) ([]domain.FeatureDomain, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.FeatureDomain
	for _, fd := range f.domains {
		if fd.TenantID == tenantID && fd.Domain == path && fd.Method == method {
			out = append(out, fd)
		}
	}
	return out, nil
}

type fakeLicenseRepo struct {
	licenses []domain.License
	err      error
}

func (f *fakeLicenseRepo) ListUsable(_ context.Context, tenantID, sponsorID string) ([]domain.License, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.License
	for _, l := range f.licenses {
		if l.TenantID == tenantID && l.SponsorID == sponsorID && l.Usable() {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeEntitlementRepo struct {
	customer []domain.CustomerEntitlement
	client   []domain.ClientEntitlement
	err      error
}

func (f *fakeEntitlementRepo) ListCustomerCampaignIDs(_ context.Context, userID int64, tenantID, sponsorID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, e := range f.customer {
		if e.UserID == userID && e.TenantID == tenantID && e.SponsorID == sponsorID &&
			e.Status == "active" && e.DeletedOn == nil {
			out = append(out, e.CampaignID)
		}
	}
	return out, nil
}

func (f *fakeEntitlementRepo) ListClientEntitlements(_ context.Context, userID int64, tenantID string) ([]domain.ClientEntitlement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.ClientEntitlement
	for _, e := range f.client {
		if e.UserID == userID && e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCampaignRepo struct {
	owned map[string][]domain.Campaign // key tenant|sponsor
	err   error
}

func (f *fakeCampaignRepo) ListOwnedBySponsor(_ context.Context, tenantID, sponsorID string) ([]domain.Campaign, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owned[tenantID+"|"+sponsorID], nil
}

type staticVerifier struct {
	claims domain.Claims
	err    error
}

func (v *staticVerifier) Verify(_ context.Context, _ string) (domain.Claims, error) {
	if v.err != nil {
		return domain.Claims{}, v.err
	}
	return v.claims, nil
}

type staticPolicy struct {
	result domain.AccessPolicyResult
	err    error
}

func (p *staticPolicy) Evaluate(_ context.Context, _ domain.AccessPolicyInput) (domain.AccessPolicyResult, error) {
	return p.result, p.err
}
