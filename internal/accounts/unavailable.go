package accounts

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/forum/pkg/handlers"
	"github.com/JaimeStill/forum/pkg/middleware"
)

func unavailable(logger *slog.Logger, name string) http.HandlerFunc {
	err := fmt.Errorf("%s is not configured", name)
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondError(w, logger, http.StatusNotImplemented, err)
	}
}

func unavailableGate(logger *slog.Logger, name string) middleware.Middleware {
	h := unavailable(logger, name)
	return func(http.Handler) http.Handler {
		return h
	}
}

// UnavailableMiddleware returns gates and redirects that answer 501 for
// every request. They let the routes serve before real implementations
// are wired; replace fields as implementations become available.
func UnavailableMiddleware(logger *slog.Logger) Middleware {
	return Middleware{
		ExposeUID:               unavailableGate(logger, "expose_uid"),
		CanViewUsers:            unavailableGate(logger, "can_view_users"),
		EnsureLoggedIn:          unavailableGate(logger, "ensure_logged_in"),
		CheckAccountPermissions: unavailableGate(logger, "check_account_permissions"),
		RedirectMeToUserslug:    unavailable(logger, "redirect_me_to_userslug"),
		RedirectUIDToUserslug:   unavailable(logger, "redirect_uid_to_userslug"),
	}
}

// UnavailableControllers returns controllers that answer 501 for every
// request.
func UnavailableControllers(logger *slog.Logger) Controllers {
	u := func(name string) http.HandlerFunc {
		return unavailable(logger, "accounts."+name)
	}
	return Controllers{Accounts: AccountControllers{
		Profile: ProfileControllers{Get: u("profile.get")},
		Follow: FollowControllers{
			GetFollowing: u("follow.get_following"),
			GetFollowers: u("follow.get_followers"),
		},
		Posts: PostsControllers{
			GetPosts:              u("posts.get_posts"),
			GetTopics:             u("posts.get_topics"),
			GetBestPosts:          u("posts.get_best_posts"),
			GetControversialPosts: u("posts.get_controversial_posts"),
			GetBookmarks:          u("posts.get_bookmarks"),
			GetWatchedTopics:      u("posts.get_watched_topics"),
			GetIgnoredTopics:      u("posts.get_ignored_topics"),
			GetUpVotedPosts:       u("posts.get_up_voted_posts"),
			GetDownVotedPosts:     u("posts.get_down_voted_posts"),
		},
		Groups:     GroupsControllers{Get: u("groups.get")},
		Categories: CategoriesControllers{Get: u("categories.get")},
		Edit: EditControllers{
			Get:      u("edit.get"),
			Username: u("edit.username"),
			Email:    u("edit.email"),
			Password: u("edit.password"),
		},
		Info:          InfoControllers{Get: u("info.get")},
		Settings:      SettingsControllers{Get: u("settings.get")},
		Uploads:       UploadsControllers{Get: u("uploads.get")},
		Consent:       ConsentControllers{Get: u("consent.get")},
		Blocks:        BlocksControllers{GetBlocks: u("blocks.get_blocks")},
		Sessions:      SessionsControllers{Get: u("sessions.get")},
		Notifications: NotificationsControllers{Get: u("notifications.get")},
		Chats: ChatsControllers{
			Get:            u("chats.get"),
			RedirectToChat: u("chats.redirect_to_chat"),
		},
	}}
}
