package service

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe does not exist or was deleted
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrForbidden is returned when a user modifies a recipe they do not own
	ErrForbidden = errors.New("recipe belongs to another user")
	// ErrInvalidFactor is returned for scale factors outside (0, MaxScaleFactor]
	ErrInvalidFactor = errors.New("invalid scale factor")
	// ErrQuantityOutOfRange is returned when a scaled amount exceeds the float64 range
	ErrQuantityOutOfRange = errors.New("scaled quantity out of range")
	// ErrExportUnavailable is returned when no object storage is configured
	ErrExportUnavailable = errors.New("shopping list export is not configured")
	// ErrInvalidToken is returned for malformed, expired or foreign tokens
	ErrInvalidToken = errors.New("invalid token")
)
