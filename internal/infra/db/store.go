package db

import (
	"fmt"

	"insightd/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Store struct {
	DB *gorm.DB

	Users        *UserRepository
	Bindings     *BindingRepository
	Domains      *FeatureDomainRepository
	Licenses     *LicenseRepository
	Entitlements *EntitlementRepository
	Campaigns    *CampaignRepository
	Attendees    *AttendeeRepository
}

func NewStore(cfg config.Config) (*Store, error) {
	if cfg.PostgresDSN == "" {
		// No-db mode keeps the health endpoint serviceable; every
		// repository call reports the store as unavailable.
		return newStore(nil), nil
	}
	gdb, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return newStore(gdb), nil
}

func newStore(gdb *gorm.DB) *Store {
	return &Store{
		DB:           gdb,
		Users:        NewUserRepository(gdb),
		Bindings:     NewBindingRepository(gdb),
		Domains:      NewFeatureDomainRepository(gdb),
		Licenses:     NewLicenseRepository(gdb),
		Entitlements: NewEntitlementRepository(gdb),
		Campaigns:    NewCampaignRepository(gdb),
		Attendees:    NewAttendeeRepository(gdb),
	}
}
