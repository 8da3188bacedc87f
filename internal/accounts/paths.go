package accounts

import (
	"net/url"
)

const (
	// WellKnownChangePassword is the password-manager change-password URL.
	WellKnownChangePassword = "/.well-known/change-password"

	// ChangePasswordTarget is where WellKnownChangePassword always redirects.
	ChangePasswordTarget = "/me/edit/password"
)

// ProfilePattern returns the profile route pattern for the section name.
func ProfilePattern(name string) string {
	return "/" + name + "/:userslug"
}

// ProfilePath returns the canonical profile path of a user.
func ProfilePath(name, userslug string) string {
	return "/" + name + "/" + url.PathEscape(userslug)
}

// ChatPath returns the chat path of a user, pointing at roomID when set.
func ChatPath(name, userslug, roomID string) string {
	path := ProfilePath(name, userslug) + "/chats"
	if roomID != "" {
		path += "/" + url.PathEscape(roomID)
	}
	return path
}
