package httpserver

import "github.com/dmitrijs2005/signupd/internal/server/services"

const (
	msgCreated         = "you successfully signed up"
	msgUsernameTaken   = "this username is already taken!"
	msgPasswordLength  = "password length should be between 8 and 512 characters"
	msgEmailTaken      = "this email is already taken!"
	msgTooLongEmail    = "email length should be no more than 255"
	msgTooLongUsername = "username length should be no more than 100 characters"
	msgUnknown         = "unknown error occurred"
)

// Message returns the text shown on the signup page for a result.
func Message(r services.Result) string {
	switch r {
	case services.Created:
		return msgCreated
	case services.UsernameTaken:
		return msgUsernameTaken
	case services.TooShortPassword, services.TooLongPassword:
		return msgPasswordLength
	case services.EmailTaken:
		return msgEmailTaken
	case services.TooLongEmail:
		return msgTooLongEmail
	case services.TooLongUsername:
		return msgTooLongUsername
	default:
		return msgUnknown
	}
}
