// Package common defines sentinel errors and small helpers shared by the
// storage and service layers. Callers should use errors.Is to match errors.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorValidationRejected = errors.New("validation rejected")
)
