package tui

import "github.com/MKhiriev/go-pass-keeper/internal/session"

// NavigateTo is a Bubble Tea message sent by any page model to instruct [RootModel]
// to switch the active page.
type NavigateTo struct {
	// Page is the key of the target page in the RootModel pages map.
	Page string
	// Payload is an optional message dispatched to the new page immediately after
	// navigation. May be nil when no initial data is required.
	Payload any
}

// LoginResult is a Bubble Tea message produced by the async login command.
// It is handled both by [LoginModel] (to display errors) and by [RootModel]
// (to capture the unlocked session and terminate the login flow).
type LoginResult struct {
	// Err is non-nil when authentication failed.
	Err error
	// Email is the address submitted by the user.
	Email string
	// Session is the session unlocked by a successful login.
	Session *session.UnlockedSession
}

// RegisterResult is a Bubble Tea message produced by the async registration command.
// It is handled by [RegisterModel] to display errors or, on success, to start the
// follow-up login.
type RegisterResult struct {
	// Err is non-nil when registration failed.
	Err error
	// Email is the address the user registered with.
	Email string
}

// RegisterSuccessNotice is a Bubble Tea message that [MenuModel] handles by displaying a
// confirmation status line. No page in this package sends it: a successful registration
// continues straight into login.
type RegisterSuccessNotice struct {
	// Email is the address of the newly registered account, used in the status message.
	Email string
}
