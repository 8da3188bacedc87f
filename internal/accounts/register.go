package accounts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/forum/pkg/routes"
)

// Chains are the middleware sequences shared by the account routes.
type Chains struct {
	// Viewer grants read access to a profile under its visibility rules.
	Viewer *routes.Chain
	// Account is Viewer followed by the login and ownership checks.
	Account *routes.Chain
	// LoggedIn only requires a signed-in user.
	LoggedIn *routes.Chain
}

// NewChains builds the chains from mw. Each call returns new chains.
func NewChains(mw Middleware) Chains {
	viewer := routes.NewChain("viewer", mw.ExposeUID, mw.CanViewUsers)
	return Chains{
		Viewer:   viewer,
		Account:  viewer.Extend("account", mw.EnsureLoggedIn, mw.CheckAccountPermissions),
		LoggedIn: routes.NewChain("logged-in", mw.EnsureLoggedIn),
	}
}

type options struct {
	apiPrefix string
}

// Option configures Register.
type Option func(*options)

// WithAPIPrefix mirrors every page route under prefix ("/api" mirrors
// "/me" as "/api/me"). The mirror shares the page route's chain and handler;
// requests reaching it through MarkAPI report IsAPI.
func WithAPIPrefix(prefix string) Option {
	return func(o *options) {
		o.apiPrefix = prefix
	}
}

// Register binds the account routes to app under "/{name}/:userslug".
//
// Every Middleware and Controllers field must be set; otherwise Register
// returns an error naming each missing field and registers nothing. name is
// used verbatim in the patterns: keeping it a plain path segment is the
// caller's responsibility.
//
// Register must be called once per app. A second call registers a second,
// independent copy of every entry.
func Register(app routes.System, name string, mw Middleware, c Controllers, opts ...Option) error {
	if err := errors.Join(mw.Validate(), c.Validate()); err != nil {
		return fmt.Errorf("register account routes: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	chains := NewChains(mw)
	viewer, account, loggedIn := chains.Viewer, chains.Account, chains.LoggedIn
	a := c.Accounts
	user := ProfilePattern(name)

	p := &pages{app: app}

	p.add("/me", nil, mw.RedirectMeToUserslug)
	p.add("/me/*", nil, mw.RedirectMeToUserslug)
	p.add("/uid/:uid*", nil, mw.RedirectUIDToUserslug)

	p.add(user, viewer, a.Profile.Get)
	p.add(user+"/following", viewer, a.Follow.GetFollowing)
	p.add(user+"/followers", viewer, a.Follow.GetFollowers)

	p.add(user+"/posts", viewer, a.Posts.GetPosts)
	p.add(user+"/topics", viewer, a.Posts.GetTopics)
	p.add(user+"/best", viewer, a.Posts.GetBestPosts)
	p.add(user+"/controversial", viewer, a.Posts.GetControversialPosts)
	p.add(user+"/groups", viewer, a.Groups.Get)

	p.add(user+"/categories", account, a.Categories.Get)
	p.add(user+"/bookmarks", account, a.Posts.GetBookmarks)
	p.add(user+"/watched", account, a.Posts.GetWatchedTopics)
	p.add(user+"/ignored", account, a.Posts.GetIgnoredTopics)
	p.add(user+"/upvoted", account, a.Posts.GetUpVotedPosts)
	p.add(user+"/downvoted", account, a.Posts.GetDownVotedPosts)
	p.add(user+"/edit", account, a.Edit.Get)
	p.add(user+"/edit/username", account, a.Edit.Username)
	p.add(user+"/edit/email", account, a.Edit.Email)
	p.add(user+"/edit/password", account, a.Edit.Password)

	app.Use(WellKnownChangePassword, ChangePassword)

	p.add(user+"/info", account, a.Info.Get)
	p.add(user+"/settings", account, a.Settings.Get)
	p.add(user+"/uploads", account, a.Uploads.Get)
	p.add(user+"/consent", account, a.Consent.Get)
	p.add(user+"/blocks", account, a.Blocks.GetBlocks)
	p.add(user+"/sessions", account, a.Sessions.Get)

	p.add("/notifications", loggedIn, a.Notifications.Get)

	p.add(user+"/chats/:roomid?", viewer, a.Chats.Get)
	p.add("/chats/:roomid?", loggedIn, a.Chats.RedirectToChat)

	if o.apiPrefix != "" {
		app.RegisterGroup(routes.Group{Prefix: o.apiPrefix, Routes: p.registered})
	}

	return nil
}

// pages registers page routes and remembers them for the API mirror.
type pages struct {
	app        routes.System
	registered []routes.Route
}

func (p *pages) add(pattern string, chain *routes.Chain, handler http.HandlerFunc) {
	p.app.Get(pattern, chain, handler)
	p.registered = append(p.registered, routes.Route{
		Method:  http.MethodGet,
		Pattern: pattern,
		Chain:   chain,
		Handler: handler,
	})
}
