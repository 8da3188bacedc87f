package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/forum/pkg/handlers"
	"github.com/JaimeStill/forum/pkg/routes"
)

// ErrNotSignedIn is returned to clients that need a session and have none.
var ErrNotSignedIn = errors.New("not signed in")

// Identity resolves users to their userslugs. Session handling and user
// storage live behind it.
type Identity interface {
	// Current returns the userslug of the signed-in user, if any.
	Current(r *http.Request) (userslug string, ok bool)
	// Lookup returns the userslug of uid. ok is false for unknown users.
	Lookup(ctx context.Context, uid int64) (userslug string, ok bool, err error)
}

// Anonymous is an Identity with no signed-in user and no known users.
type Anonymous struct{}

func (Anonymous) Current(*http.Request) (string, bool) { return "", false }

func (Anonymous) Lookup(context.Context, int64) (string, bool, error) { return "", false, nil }

// Redirects builds the handlers that send shortcut URLs to a user's
// canonical path under the section name.
type Redirects struct {
	name     string
	identity Identity
	logger   *slog.Logger
}

// NewRedirects creates the redirect handlers for section name.
func NewRedirects(name string, identity Identity, logger *slog.Logger) *Redirects {
	return &Redirects{name: name, identity: identity, logger: logger}
}

// Me handles "/me" and "/me/*": it redirects to the signed-in user's
// profile, keeping the remainder and the query. Anonymous requests get 401.
func (rd *Redirects) Me(w http.ResponseWriter, r *http.Request) {
	slug, ok := rd.identity.Current(r)
	if !ok || slug == "" {
		handlers.RespondError(w, rd.logger, http.StatusUnauthorized, ErrNotSignedIn)
		return
	}
	rd.profile(w, r, slug)
}

// UID handles "/uid/:uid*": it redirects to the profile of uid, keeping the
// remainder and the query. Invalid or unknown uids are not found.
func (rd *Redirects) UID(w http.ResponseWriter, r *http.Request) {
	uid, err := strconv.ParseInt(routes.Param(r, "uid"), 10, 64)
	if err != nil || uid <= 0 {
		http.NotFound(w, r)
		return
	}

	slug, ok, err := rd.identity.Lookup(r.Context(), uid)
	if err != nil {
		handlers.RespondError(w, rd.logger, http.StatusInternalServerError, fmt.Errorf("lookup uid %d: %w", uid, err))
		return
	}
	if !ok || slug == "" {
		http.NotFound(w, r)
		return
	}

	rd.profile(w, r, slug)
}

// Chat handles "/chats/:roomid?": it redirects to the signed-in user's chat
// path. A roomid that is not a positive integer is dropped.
func (rd *Redirects) Chat(w http.ResponseWriter, r *http.Request) {
	slug, ok := rd.identity.Current(r)
	if !ok || slug == "" {
		http.NotFound(w, r)
		return
	}

	room := ""
	if id, err := strconv.ParseInt(routes.Param(r, "roomid"), 10, 64); err == nil && id > 0 {
		room = strconv.FormatInt(id, 10)
	}

	rd.redirect(w, r, ChatPath(rd.name, slug, room))
}

func (rd *Redirects) redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	handlers.Redirect(w, r, target, IsAPI(r.Context()))
}

// profile redirects to slug's profile followed by the matched remainder.
func (rd *Redirects) profile(w http.ResponseWriter, r *http.Request, slug string) {
	target, err := routes.Path(ProfilePattern(rd.name)+"/*", map[string]string{
		"userslug":       slug,
		routes.RestParam: routes.EscapedRest(r),
	})
	if err != nil {
		handlers.RespondError(w, rd.logger, http.StatusInternalServerError, err)
		return
	}
	rd.redirect(w, r, target)
}

// ChangePassword redirects unconditionally to ChangePasswordTarget.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, ChangePasswordTarget, http.StatusFound)
}
