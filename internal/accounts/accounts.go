// Package accounts registers the user account pages: profile and content
// listings, owner-only account management, notifications, chats, and the
// shortcut redirects that resolve to a user's canonical profile path.
//
// The package owns the route table and the middleware ordering. What the
// gates and controllers actually do is supplied by the caller through
// Middleware and Controllers.
package accounts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/forum/pkg/middleware"
)

// ErrMissingHandler reports a Middleware or Controllers field left nil.
var ErrMissingHandler = errors.New("missing handler")

// Middleware holds the request gates and redirect handlers used by the
// account routes.
type Middleware struct {
	ExposeUID               middleware.Middleware
	CanViewUsers            middleware.Middleware
	EnsureLoggedIn          middleware.Middleware
	CheckAccountPermissions middleware.Middleware

	RedirectMeToUserslug  http.HandlerFunc
	RedirectUIDToUserslug http.HandlerFunc
}

// Validate reports every nil field.
func (m Middleware) Validate() error {
	v := validator{scope: "middleware"}
	v.check("expose_uid", m.ExposeUID != nil)
	v.check("can_view_users", m.CanViewUsers != nil)
	v.check("ensure_logged_in", m.EnsureLoggedIn != nil)
	v.check("check_account_permissions", m.CheckAccountPermissions != nil)
	v.check("redirect_me_to_userslug", m.RedirectMeToUserslug != nil)
	v.check("redirect_uid_to_userslug", m.RedirectUIDToUserslug != nil)
	return v.err()
}

// Controllers holds every page handler bound by Register.
type Controllers struct {
	Accounts AccountControllers
}

// AccountControllers groups the page handlers by account section.
type AccountControllers struct {
	Profile       ProfileControllers
	Follow        FollowControllers
	Posts         PostsControllers
	Groups        GroupsControllers
	Categories    CategoriesControllers
	Edit          EditControllers
	Info          InfoControllers
	Settings      SettingsControllers
	Uploads       UploadsControllers
	Consent       ConsentControllers
	Blocks        BlocksControllers
	Sessions      SessionsControllers
	Notifications NotificationsControllers
	Chats         ChatsControllers
}

// ProfileControllers render the profile page.
type ProfileControllers struct {
	Get http.HandlerFunc
}

// FollowControllers list who a user follows and who follows them.
type FollowControllers struct {
	GetFollowing http.HandlerFunc
	GetFollowers http.HandlerFunc
}

// PostsControllers render views over a user's posts and topics. Best ranks
// by score and Controversial by engagement; the remaining handlers are
// owner-only lists.
type PostsControllers struct {
	GetPosts              http.HandlerFunc
	GetTopics             http.HandlerFunc
	GetBestPosts          http.HandlerFunc
	GetControversialPosts http.HandlerFunc
	GetBookmarks          http.HandlerFunc
	GetWatchedTopics      http.HandlerFunc
	GetIgnoredTopics      http.HandlerFunc
	GetUpVotedPosts       http.HandlerFunc
	GetDownVotedPosts     http.HandlerFunc
}

// GroupsControllers list the groups a user belongs to.
type GroupsControllers struct {
	Get http.HandlerFunc
}

// CategoriesControllers render the owner's category watch settings.
type CategoriesControllers struct {
	Get http.HandlerFunc
}

// EditControllers render the profile edit page and its username, email
// and password forms.
type EditControllers struct {
	Get      http.HandlerFunc
	Username http.HandlerFunc
	Email    http.HandlerFunc
	Password http.HandlerFunc
}

// InfoControllers render moderation details about a user.
type InfoControllers struct {
	Get http.HandlerFunc
}

// SettingsControllers render the owner's preferences.
type SettingsControllers struct {
	Get http.HandlerFunc
}

// UploadsControllers list the owner's uploaded files.
type UploadsControllers struct {
	Get http.HandlerFunc
}

// ConsentControllers render the owner's data consent page.
type ConsentControllers struct {
	Get http.HandlerFunc
}

// BlocksControllers list the users the owner has blocked.
type BlocksControllers struct {
	GetBlocks http.HandlerFunc
}

// SessionsControllers list the owner's active sessions.
type SessionsControllers struct {
	Get http.HandlerFunc
}

// NotificationsControllers render the signed-in user's notifications.
type NotificationsControllers struct {
	Get http.HandlerFunc
}

// ChatsControllers render a user's chat rooms. RedirectToChat serves
// the bare "/chats" shortcut.
type ChatsControllers struct {
	Get            http.HandlerFunc
	RedirectToChat http.HandlerFunc
}

// Validate reports every nil handler.
func (c Controllers) Validate() error {
	a := c.Accounts
	v := validator{scope: "controllers"}
	v.check("accounts.profile.get", a.Profile.Get != nil)
	v.check("accounts.follow.get_following", a.Follow.GetFollowing != nil)
	v.check("accounts.follow.get_followers", a.Follow.GetFollowers != nil)
	v.check("accounts.posts.get_posts", a.Posts.GetPosts != nil)
	v.check("accounts.posts.get_topics", a.Posts.GetTopics != nil)
	v.check("accounts.posts.get_best_posts", a.Posts.GetBestPosts != nil)
	v.check("accounts.posts.get_controversial_posts", a.Posts.GetControversialPosts != nil)
	v.check("accounts.posts.get_bookmarks", a.Posts.GetBookmarks != nil)
	v.check("accounts.posts.get_watched_topics", a.Posts.GetWatchedTopics != nil)
	v.check("accounts.posts.get_ignored_topics", a.Posts.GetIgnoredTopics != nil)
	v.check("accounts.posts.get_up_voted_posts", a.Posts.GetUpVotedPosts != nil)
	v.check("accounts.posts.get_down_voted_posts", a.Posts.GetDownVotedPosts != nil)
	v.check("accounts.groups.get", a.Groups.Get != nil)
	v.check("accounts.categories.get", a.Categories.Get != nil)
	v.check("accounts.edit.get", a.Edit.Get != nil)
	v.check("accounts.edit.username", a.Edit.Username != nil)
	v.check("accounts.edit.email", a.Edit.Email != nil)
	v.check("accounts.edit.password", a.Edit.Password != nil)
	v.check("accounts.info.get", a.Info.Get != nil)
	v.check("accounts.settings.get", a.Settings.Get != nil)
	v.check("accounts.uploads.get", a.Uploads.Get != nil)
	v.check("accounts.consent.get", a.Consent.Get != nil)
	v.check("accounts.blocks.get_blocks", a.Blocks.GetBlocks != nil)
	v.check("accounts.sessions.get", a.Sessions.Get != nil)
	v.check("accounts.notifications.get", a.Notifications.Get != nil)
	v.check("accounts.chats.get", a.Chats.Get != nil)
	v.check("accounts.chats.redirect_to_chat", a.Chats.RedirectToChat != nil)
	return v.err()
}

type validator struct {
	scope string
	errs  []error
}

func (v *validator) check(field string, ok bool) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf("%s %s: %w", v.scope, field, ErrMissingHandler))
	}
}

func (v *validator) err() error {
	return errors.Join(v.errs...)
}
