package usecase

import (
	"context"

	"insightd/internal/domain"
)

// DomainAccessValidator checks a normalized (path template, method) pair
// against the registered feature domains and the sponsor's licenses.
type DomainAccessValidator struct {
	domains  FeatureDomainRepository
	licenses LicenseRepository
}

func NewDomainAccessValidator(domains FeatureDomainRepository, licenses LicenseRepository) *DomainAccessValidator {
	return &DomainAccessValidator{domains: domains, licenses: licenses}
}

// Validate returns the license model ids that grant the sponsor access to
// the domain. No matching registration denies with ErrDomainNotRegistered;
// registrations without a usable license deny with ErrLicenseInactive.
func (v *DomainAccessValidator) Validate(ctx context.Context, tenantID, sponsorID, normalizedPath, method string) ([]string, error) {
	registered, err := v.domains.ListByDomainMethod(ctx, tenantID, normalizedPath, method)
	if err != nil {
		return nil, storeErr("list feature domains", err)
	}
	if len(registered) == 0 {
		return nil, domain.ErrDomainNotRegistered
	}

	licenses, err := v.licenses.ListUsable(ctx, tenantID, sponsorID)
	if err != nil {
		return nil, storeErr("list licenses", err)
	}
	usable := make(map[licenseKey]bool, len(licenses))
	for _, l := range licenses {
		if l.Usable() {
			usable[licenseKey{l.LicenseModelID, l.ApplicationID}] = true
		}
	}

	var modelIDs []string
	seen := make(map[string]bool)
	for _, fd := range registered {
		if !usable[licenseKey{fd.LicenseModelID, fd.ApplicationID}] {
			continue
		}
		if !seen[fd.LicenseModelID] {
			seen[fd.LicenseModelID] = true
			modelIDs = append(modelIDs, fd.LicenseModelID)
		}
	}
	if len(modelIDs) == 0 {
		return nil, domain.ErrLicenseInactive
	}
	return modelIDs, nil
}

type licenseKey struct {
	modelID       string
	applicationID int64
}
