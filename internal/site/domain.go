package site

import (
	"github.com/JaimeStill/forum/internal/accounts"
	"github.com/JaimeStill/forum/internal/config"
)

// Domain holds the gates and controllers bound to the account routes.
type Domain struct {
	Middleware  accounts.Middleware
	Controllers accounts.Controllers
}

// NewDomain wires the login gate and the redirect handlers over the
// runtime identity and leaves every other gate and controller unavailable.
func NewDomain(runtime *Runtime, cfg *config.AccountsConfig) *Domain {
	redirects := accounts.NewRedirects(cfg.Name, runtime.Identity, runtime.Logger)

	mw := accounts.UnavailableMiddleware(runtime.Logger)
	mw.EnsureLoggedIn = accounts.EnsureLoggedIn(runtime.Identity, runtime.Logger)
	mw.RedirectMeToUserslug = redirects.Me
	mw.RedirectUIDToUserslug = redirects.UID

	ctrl := accounts.UnavailableControllers(runtime.Logger)
	ctrl.Accounts.Chats.RedirectToChat = redirects.Chat

	return &Domain{Middleware: mw, Controllers: ctrl}
}
