// Package common defines sentinel errors shared by the repository, service
// and transport layers of the users API. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrorValidation     = errors.New("validation error")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
