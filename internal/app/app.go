// Package app ties the router, navigation shell and contact flow together
// for a single visitor.
package app

import (
	"net/http"
	"sync"
	"time"

	"github.com/pinecoastbbq/pinecoast/internal/contact"
	"github.com/pinecoastbbq/pinecoast/internal/nav"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
)

// Options configures what an App renders and where it sends contact
// submissions.
type Options struct {
	// BaseURL is the contact API origin. Empty means a path relative to
	// the page, which only works in the browser.
	BaseURL string
	Client  *http.Client

	BasePath   string // defaults to "/"
	LogoURL    string
	StoryImage string
	HeroImages []string
	HeroPeriod time.Duration
	HeroSocket string

	// Static renders the contact form for browser-side submission
	// instead of posting back to the server.
	Static bool
}

// App is one visitor's view state.
type App struct {
	Router *pages.Router
	Shell  *nav.Shell
	Flow   *contact.Flow

	opts Options
	now  func() time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// New creates an App showing the home page with the menu closed.
func New(opts Options) *App {
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	router := pages.NewRouter()
	a := &App{
		Router: router,
		Shell:  nav.NewShell(router),
		Flow:   contact.NewFlow(opts.BaseURL, opts.Client),
		opts:   opts,
		now:    time.Now,
	}
	a.lastSeen = a.now()
	return a
}

// Navigate shows id and closes the mobile menu.
func (a *App) Navigate(id pages.PageID) {
	a.leave(id)
	a.Shell.Select(id)
}

// ToggleMenu opens or closes the mobile menu on the current page.
func (a *App) ToggleMenu() {
	a.Shell.ToggleMenu()
}

// ToggleMenuOn shows id and flips the mobile menu.
func (a *App) ToggleMenuOn(id pages.PageID) {
	a.leave(id)
	a.Router.SetCurrentPage(id)
	a.Shell.ToggleMenu()
}

// leave discards the contact form when moving off the contact page.
func (a *App) leave(next pages.PageID) {
	if a.Router.CurrentPage() == pages.ContactUs && pages.ParsePageID(string(next)) != pages.ContactUs {
		a.Flow.Reset()
	}
}

// Page returns the page being shown.
func (a *App) Page() pages.PageID {
	return a.Router.CurrentPage()
}

// View assembles everything needed to render the current page.
func (a *App) View() pages.View {
	current := a.Router.CurrentPage()
	base := a.opts.BasePath

	links := a.Shell.Links()
	navLinks := make([]pages.NavLink, len(links))
	for i, l := range links {
		navLinks[i] = pages.NavLink{
			Label:  l.Label,
			Page:   l.ID,
			Href:   base + l.ID.Path(),
			Active: l.ID == current,
		}
	}

	toggle := base + current.Path() + "?menu=toggle"
	if a.opts.Static {
		toggle = "#mobile-nav"
	}

	cv := pages.ContactView{
		Form:    a.Flow.Form(),
		Status:  a.Flow.Status(),
		Sending: a.Flow.Sending(),
		Action:  base + pages.ContactUs.Path(),
	}
	if a.opts.Static {
		cv.Action = "#"
		cv.APIEndpoint = a.Flow.URL()
	}

	return pages.View{
		Page:       current,
		BasePath:   base,
		Nav:        navLinks,
		MenuOpen:   a.Shell.IsMenuOpen(),
		StaticMenu: a.opts.Static,
		ToggleHref: toggle,
		LogoURL:    a.opts.LogoURL,
		StoryImage: a.opts.StoryImage,
		Hero: pages.Hero{
			Images:   a.opts.HeroImages,
			PeriodMS: a.opts.HeroPeriod.Milliseconds(),
			Socket:   a.opts.HeroSocket,
		},
		Contact: cv,
		Year:    a.now().Year(),
	}
}

// Close cancels any in-flight contact submission.
func (a *App) Close() {
	a.Flow.Close()
}

func (a *App) touch() {
	a.mu.Lock()
	a.lastSeen = a.now()
	a.mu.Unlock()
}

func (a *App) idleSince(t time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return t.Sub(a.lastSeen)
}
