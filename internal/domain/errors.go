package domain

import "errors"

var (
	ErrMissingToken        = errors.New("missing bearer token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token expired")
	ErrMissingClaims       = errors.New("missing required token fields")
	ErrUserNotFound        = errors.New("user not found")
	ErrAmbiguousSponsor    = errors.New("ambiguous sponsor binding")
	ErrAccessRevoked       = errors.New("access revoked")
	ErrDomainNotRegistered = errors.New("domain not registered")
	ErrLicenseInactive     = errors.New("license inactive")
	ErrAccessDenied        = errors.New("access denied")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrNotFound            = errors.New("not found")
)
