package usecase

import (
	"context"
	"errors"
	"fmt"

	"insightd/internal/domain"
)

// AccessResolution is the outcome of resolving the caller's tenant/sponsor
// binding.
type AccessResolution struct {
	UserID      int64
	SponsorID   string
	AccessLevel domain.AccessLevel
}

// AccessLevelResolver maps an external subject id to its accepted sponsor
// binding within a tenant.
type AccessLevelResolver struct {
	users    UserRepository
	bindings BindingRepository
}

func NewAccessLevelResolver(users UserRepository, bindings BindingRepository) *AccessLevelResolver {
	return &AccessLevelResolver{users: users, bindings: bindings}
}

// Resolve finds the user and its accepted binding for the tenant. A sponsor
// hint narrows the candidate set; without a hint, more than one accepted
// binding is ambiguous and resolution fails rather than guessing.
func (r *AccessLevelResolver) Resolve(ctx context.Context, subjectID, tenantID, sponsorHint string) (AccessResolution, error) {
	user, err := r.users.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AccessResolution{}, domain.ErrUserNotFound
		}
		return AccessResolution{}, storeErr("lookup user", err)
	}

	bindings, err := r.bindings.ListByUserTenant(ctx, user.ID, tenantID)
	if err != nil {
		return AccessResolution{}, storeErr("list bindings", err)
	}
	if sponsorHint != "" {
		filtered := bindings[:0:0]
		for _, b := range bindings {
			if b.SponsorID == sponsorHint {
				filtered = append(filtered, b)
			}
		}
		bindings = filtered
	}
	if len(bindings) == 0 {
		return AccessResolution{}, domain.ErrAccessDenied
	}

	var accepted []domain.SponsorBinding
	for _, b := range bindings {
		if b.Status == domain.BindingAccepted {
			accepted = append(accepted, b)
		}
	}
	if len(accepted) == 0 {
		// Bindings exist but none is accepted (pending or revoked).
		return AccessResolution{}, domain.ErrAccessRevoked
	}
	if len(accepted) > 1 {
		return AccessResolution{}, domain.ErrAmbiguousSponsor
	}

	b := accepted[0]
	return AccessResolution{
		UserID:      user.ID,
		SponsorID:   b.SponsorID,
		AccessLevel: b.AccessLevel,
	}, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
