package errors

import (
	"fmt"
)

var (
	// ErrValidation covers bad or missing config & schema failures.
	ErrValidation = fmt.Errorf("validation failed")

	// ErrResourceNotFound covers missing collections, experiments, channels & jobs.
	ErrResourceNotFound = fmt.Errorf("resource not found")

	// ErrSystem covers queue, credential, index & bucket operation failures.
	// Always wrapped around the underlying infrastructure error so the cause
	// chain survives (errors.Is / errors.As still see the original).
	ErrSystem = fmt.Errorf("system error")

	// ErrIntegrity is surfaced by collaborators, eg. deleting a resource
	// something else still references.
	ErrIntegrity = fmt.Errorf("integrity error")

	ErrETagMismatch = fmt.Errorf("etag mismatch")
	ErrInvalidArg   = fmt.Errorf("invalid arg")
)
