package services

import (
	"errors"

	"github.com/dmitrijs2005/signupd/internal/common"
)

// Result is the outcome of one AddUser call.
type Result int

const (
	Created Result = iota
	TooShortPassword
	TooLongPassword
	TooLongEmail
	TooLongUsername
	UsernameTaken
	EmailTaken
	UnknownError
)

var resultNames = map[Result]string{
	Created:          "Created",
	TooShortPassword: "TooShortPassword",
	TooLongPassword:  "TooLongPassword",
	TooLongEmail:     "TooLongEmail",
	TooLongUsername:  "TooLongUsername",
	UsernameTaken:    "UsernameTaken",
	EmailTaken:       "EmailTaken",
	UnknownError:     "UnknownError",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "UnknownError"
}

// ResultOf maps an AddUser error to its Result; nil is Created and anything
// unrecognized is UnknownError.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Created
	case errors.Is(err, common.ErrTooShortPassword):
		return TooShortPassword
	case errors.Is(err, common.ErrTooLongPassword):
		return TooLongPassword
	case errors.Is(err, common.ErrTooLongEmail):
		return TooLongEmail
	case errors.Is(err, common.ErrTooLongUsername):
		return TooLongUsername
	case errors.Is(err, common.ErrUsernameTaken):
		return UsernameTaken
	case errors.Is(err, common.ErrEmailTaken):
		return EmailTaken
	default:
		return UnknownError
	}
}
