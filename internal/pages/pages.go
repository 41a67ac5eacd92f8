// Package pages routes between the site's pages and renders them to HTML.
package pages

import "sync"

// PageID identifies which page view is displayed.
type PageID string

const (
	Home      PageID = "home"
	Menu      PageID = "menu"
	OurStory  PageID = "our-story"
	ContactUs PageID = "contact-us"
)

// All lists every page in navigation order.
var All = []PageID{Home, Menu, OurStory, ContactUs}

// ParsePageID maps s to a known page. Anything unrecognized is Home.
func ParsePageID(s string) PageID {
	switch id := PageID(s); id {
	case Home, Menu, OurStory, ContactUs:
		return id
	default:
		return Home
	}
}

// Heading is the distinguishing heading shown at the top of each page.
func (id PageID) Heading() string {
	switch ParsePageID(string(id)) {
	case Menu:
		return "Our Menu"
	case OurStory:
		return "Our Story"
	case ContactUs:
		return "Get In Touch"
	default:
		return "Authentic Maine BBQ"
	}
}

// Path is the page's location relative to the site root. Home is the root.
func (id PageID) Path() string {
	if p := ParsePageID(string(id)); p != Home {
		return string(p) + "/"
	}
	return ""
}

// Router holds the current page. The zero value shows Home.
type Router struct {
	mu      sync.RWMutex
	current PageID
}

// NewRouter returns a Router showing Home.
func NewRouter() *Router {
	return &Router{current: Home}
}

// CurrentPage returns the page being shown.
func (r *Router) CurrentPage() PageID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == "" {
		return Home
	}
	return r.current
}

// SetCurrentPage switches pages. Unknown ids are accepted and shown as Home.
func (r *Router) SetCurrentPage(id PageID) {
	r.mu.Lock()
	r.current = ParsePageID(string(id))
	r.mu.Unlock()
}
