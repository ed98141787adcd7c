package domain

import "time"

// User is an identity federated from the external identity provider. Users
// are created by provisioning and immutable here except for email.
type User struct {
	ID        int64
	SubjectID string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// Tenant is the top-level isolation boundary.
type Tenant struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Sponsor is a business unit within a tenant; sponsors own campaigns and
// hold licenses.
type Sponsor struct {
	ID        string
	TenantID  string
	Name      string
	CreatedAt time.Time
}

type BindingStatus string

const (
	BindingPending  BindingStatus = "pending"
	BindingAccepted BindingStatus = "accepted"
	BindingRevoked  BindingStatus = "revoked"
)

// SponsorBinding ties a user to a (tenant, sponsor) pair with an access
// level. Only accepted bindings grant access. Unique per (user, tenant,
// sponsor).
type SponsorBinding struct {
	UserID      int64
	TenantID    string
	SponsorID   string
	AccessLevel AccessLevel
	Status      BindingStatus
}

// Campaign is the resource unit access decisions are scoped to. Division,
// Family and Brand classify the campaign for hierarchical entitlements.
type Campaign struct {
	ID       string
	Name     string
	Division string
	Family   string
	Brand    string
	Status   string
}

type LicenseStatus string

const (
	LicenseActive   LicenseStatus = "active"
	LicenseInactive LicenseStatus = "inactive"
	LicenseExpired  LicenseStatus = "expired"
)

// License grants a sponsor the use of an application under a license model.
type License struct {
	ID             int64
	LicenseModelID string
	ApplicationID  int64
	TenantID       string
	SponsorID      string
	Status         LicenseStatus
	DeletedOn      *time.Time
}

func (l License) Usable() bool {
	return l.Status == LicenseActive && l.DeletedOn == nil
}

// FeatureDomain is a registered ACL entry: a normalized path template plus
// HTTP method, gated by the license model of an application.
type FeatureDomain struct {
	ID             int64
	ApplicationID  int64
	TenantID       string
	LicenseModelID string
	Domain         string
	Method         string
}

// CustomerEntitlement is a direct grant of one user to one campaign.
type CustomerEntitlement struct {
	UserID         int64
	TenantID       string
	SponsorID      string
	LicenseModelID string
	CampaignID     string
	Status         string
	DeletedOn      *time.Time
}

// ClientEntitlement is a hierarchical grant over a division/family/brand
// classification; empty fields act as wildcards and a campaign matches when
// every non-empty field matches.
type ClientEntitlement struct {
	UserID    int64
	TenantID  string
	Division  string
	Family    string
	Brand     string
	DeletedOn *time.Time
}

// Matches reports whether the entitlement covers the campaign's
// classification.
func (e ClientEntitlement) Matches(c Campaign) bool {
	if e.Division == "" && e.Family == "" && e.Brand == "" {
		return false
	}
	if e.Division != "" && e.Division != c.Division {
		return false
	}
	if e.Family != "" && e.Family != c.Family {
		return false
	}
	if e.Brand != "" && e.Brand != c.Brand {
		return false
	}
	return true
}

// SponsorCampaign maps a campaign to the (tenant, sponsor) that owns it.
type SponsorCampaign struct {
	TenantID   string
	SponsorID  string
	CampaignID string
}

// LicenseProduct binds a campaign to a license, used to check that a
// campaign is covered by an active license.
type LicenseProduct struct {
	ID            int64
	LicenseID     int64
	ApplicationID int64
	CampaignID    string
	DeletedOn     *time.Time
}

// Attendee is a lead captured for a campaign.
type Attendee struct {
	ID          int64
	CampaignID  string
	Email       string
	FirstName   string
	LastName    string
	CompanyName string
	JobTitle    string
	Industry    string
	Country     string
	City        string
	State       string
}
