package tui

import "github.com/elparchetipk/go-auth-api/models"

// NavigateTo switches the root model to another page. A non-nil Payload is
// re-dispatched to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the async login command.
type LoginResult struct {
	User models.PublicUser
	Err  error
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	User models.PublicUser
	Err  error
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

// LogoutNotice is shown on the menu after the session ends.
type LogoutNotice struct{}

type profileLoadedMsg struct {
	user models.PublicUser
	err  error
}

type verifyDoneMsg struct {
	user models.PublicUser
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}
