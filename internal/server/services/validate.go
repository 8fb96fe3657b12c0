package services

import "github.com/dmitrijs2005/signupd/internal/common"

// Length limits, in bytes.
const (
	MinPasswordLen = 8
	MaxPasswordLen = 512
	MaxEmailLen    = 255
	MaxUsernameLen = 100
)

// ValidateCandidate checks field lengths in a fixed order and reports the
// first violation only.
func ValidateCandidate(username, email, password string) error {
	switch {
	case len(password) < MinPasswordLen:
		return common.ErrTooShortPassword
	case len(password) > MaxPasswordLen:
		return common.ErrTooLongPassword
	case len(email) > MaxEmailLen:
		return common.ErrTooLongEmail
	case len(username) > MaxUsernameLen:
		return common.ErrTooLongUsername
	}
	return nil
}
