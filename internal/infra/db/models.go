package db

import "time"

type UserModel struct {
	ID        int64     `gorm:"primaryKey"`
	SubjectID string    `gorm:"column:cognito_user_id;uniqueIndex;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	CreatedAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type TenantModel struct {
	ID        int64     `gorm:"primaryKey"`
	TenantID  string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (TenantModel) TableName() string { return "tenants" }

type SponsorModel struct {
	ID        int64     `gorm:"primaryKey"`
	SponsorID string    `gorm:"uniqueIndex;not null"`
	TenantID  string    `gorm:"index;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SponsorModel) TableName() string { return "sponsors" }

type TenantSponsorUserModel struct {
	ID          int64     `gorm:"primaryKey"`
	TenantID    string    `gorm:"index;not null;uniqueIndex:idx_tenant_sponsor_user"`
	SponsorID   string    `gorm:"index;not null;uniqueIndex:idx_tenant_sponsor_user"`
	UserID      int64     `gorm:"index;not null;uniqueIndex:idx_tenant_sponsor_user"`
	AccessLevel string    `gorm:"not null"`
	Status      string    `gorm:"not null;default:accepted"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (TenantSponsorUserModel) TableName() string { return "tenant_sponsor_users" }

type ApplicationFeatureDomainModel struct {
	ID             int64  `gorm:"primaryKey"`
	ApplicationID  int64  `gorm:"index;not null"`
	TenantID       string `gorm:"index;not null"`
	LicenseModelID string `gorm:"not null"`
	Domain         string `gorm:"index;not null"`
	Method         string `gorm:"not null"`
}

func (ApplicationFeatureDomainModel) TableName() string { return "application_feature_domains" }

type LicenseModel struct {
	ID             int64  `gorm:"primaryKey"`
	LicenseModelID string `gorm:"not null"`
	ApplicationID  int64  `gorm:"index;not null"`
	TenantID       string `gorm:"index;not null"`
	SponsorID      string `gorm:"index;not null"`
	Status         string `gorm:"not null;default:active"`
	DeletedOn      *time.Time
	CreatedAt      time.Time `gorm:"not null"`
}

func (LicenseModel) TableName() string { return "licenses" }

type CustomerEntitlementModel struct {
	ID             int64  `gorm:"primaryKey"`
	UserID         int64  `gorm:"index;not null"`
	TenantID       string `gorm:"index;not null"`
	SponsorID      string `gorm:"index;not null"`
	LicenseModelID string `gorm:"not null"`
	CampaignID     string `gorm:"index;not null"`
	Status         string `gorm:"not null;default:active"`
	DeletedOn      *time.Time
}

func (CustomerEntitlementModel) TableName() string { return "customer_entitlements" }

type ClientEntitlementModel struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"index;not null"`
	TenantID  string `gorm:"index;not null"`
	Division  string `gorm:"index"`
	Family    string `gorm:"index"`
	Brand     string `gorm:"index"`
	DeletedOn *time.Time
}

func (ClientEntitlementModel) TableName() string { return "client_entitlements" }

type CampaignModel struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Division string `gorm:"column:division_id;index"`
	Family   string `gorm:"column:vertical_id;index"`
	Brand    string `gorm:"column:brand_id;index"`
	Status   string `gorm:"not null;default:active"`
}

func (CampaignModel) TableName() string { return "campaigns" }

type TenantSponsorCampaignModel struct {
	ID         int64  `gorm:"primaryKey"`
	TenantID   string `gorm:"index;not null"`
	SponsorID  string `gorm:"index;not null"`
	CampaignID string `gorm:"index;not null"`
}

func (TenantSponsorCampaignModel) TableName() string { return "tenant_sponsor_campaigns" }

type LicenseProductModel struct {
	ID            int64  `gorm:"primaryKey"`
	LicenseID     int64  `gorm:"index;not null"`
	ApplicationID int64  `gorm:"not null"`
	CampaignID    string `gorm:"index;not null"`
	DeletedOn     *time.Time
}

func (LicenseProductModel) TableName() string { return "license_products" }

type CampaignAttendeeModel struct {
	ID          int64  `gorm:"primaryKey"`
	CampaignID  string `gorm:"index;not null"`
	Email       string `gorm:"index;not null"`
	FirstName   string
	LastName    string
	CompanyName string
	JobTitle    string
	Industry    string
	Country     string
	City        string
	State       string
}

func (CampaignAttendeeModel) TableName() string { return "campaign_attendees" }
