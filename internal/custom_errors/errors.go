package custom_errors

import "errors"

var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
	ErrNoUpdateRows  = errors.New("no fields to update")

	ErrPostNotFound          = errors.New("post not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrStudentOfficeNotFound = errors.New("student office not found")
	ErrMenuItemNotFound      = errors.New("menu item not found")

	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrCacheMiss       = errors.New("cache miss")
	ErrCacheOperation  = errors.New("cache operation failed")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrPasswordHash = errors.New("password hashing failed")
	ErrInvalidInput = errors.New("invalid input")
)
