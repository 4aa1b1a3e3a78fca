package errors

import (
	"errors"
	"fmt"
)

// Common error types for the session and tenancy core
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account blocked")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Session token errors
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")

	// Tenant errors
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrNoTenantSelected = errors.New("no tenant selected")
	ErrNotATenantMember = errors.New("identity is not a member of tenant")

	// Navigation errors. These classify decisions, they are business
	// behavior and are never logged as system errors.
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrUnknownRoute        = errors.New("unknown route")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
