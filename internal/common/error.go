// Package common defines the sentinel errors shared by the signup service
// layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Category errors.
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInternal      = errors.New("internal error")

	// Validation errors, checked in this order.
	ErrTooShortPassword = fmt.Errorf("%w: password is too short", ErrorValidation)
	ErrTooLongPassword  = fmt.Errorf("%w: password is too long", ErrorValidation)
	ErrTooLongEmail     = fmt.Errorf("%w: email is too long", ErrorValidation)
	ErrTooLongUsername  = fmt.Errorf("%w: username is too long", ErrorValidation)

	// Uniqueness errors.
	ErrUsernameTaken = fmt.Errorf("%w: username is taken", ErrorAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("%w: email is taken", ErrorAlreadyExists)
)
