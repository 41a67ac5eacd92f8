package pages

import (
	"html/template"

	"github.com/pinecoastbbq/pinecoast/internal/contact"
)

// NavLink is one rendered header link.
type NavLink struct {
	Label  string
	Page   PageID
	Href   string
	Active bool
}

// Hero describes the rotating home page background.
type Hero struct {
	Images   []string // asset URLs
	Index    int
	PeriodMS int64
	Socket   string // websocket path pushing index changes; empty when unavailable
}

// Current returns the image URL for Index.
func (h Hero) Current() string {
	if len(h.Images) == 0 {
		return ""
	}
	return h.Images[h.Index%len(h.Images)]
}

// ContactView is the contact page form state.
type ContactView struct {
	Form    contact.Form
	Status  contact.Status
	Sending bool
	Action  string // form POST target
	// APIEndpoint is set for static builds, where the browser posts JSON
	// directly to the contact API.
	APIEndpoint string
}

// View is everything needed to render one page for one visitor.
type View struct {
	Page       PageID
	BasePath   string // prefix for links and assets, "/" when served
	Nav        []NavLink
	MenuOpen   bool
	// StaticMenu always renders the mobile nav, shown by CSS when the
	// toggle's #mobile-nav fragment is targeted.
	StaticMenu bool
	ToggleHref string
	LogoURL    string
	StoryImage string
	Hero       Hero
	Contact    ContactView
	Year       int
}

// layoutData is passed to the layout template.
type layoutData struct {
	View
	Title string
	Body  template.HTML
}
