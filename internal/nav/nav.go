// Package nav is the site header: the page links and the mobile menu.
package nav

import (
	"strings"
	"sync"

	"github.com/pinecoastbbq/pinecoast/internal/pages"
)

// Link is one header navigation entry.
type Link struct {
	Label string
	ID    pages.PageID
}

var labels = []string{"Home", "Menu", "Our Story", "Contact Us"}

// Links returns the header links in display order.
func Links() []Link {
	links := make([]Link, len(labels))
	for i, label := range labels {
		links[i] = Link{Label: label, ID: linkID(label)}
	}
	return links
}

// linkID lowercases the label and hyphenates its first space.
func linkID(label string) pages.PageID {
	return pages.PageID(strings.Replace(strings.ToLower(label), " ", "-", 1))
}

// Shell tracks the mobile menu state and forwards link clicks to a router.
type Shell struct {
	router *pages.Router

	mu   sync.Mutex
	open bool
}

// NewShell creates a Shell with the menu closed.
func NewShell(router *pages.Router) *Shell {
	return &Shell{router: router}
}

// Links returns the header links.
func (s *Shell) Links() []Link {
	return Links()
}

// IsMenuOpen reports whether the mobile menu is shown.
func (s *Shell) IsMenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// ToggleMenu flips the mobile menu open or closed.
func (s *Shell) ToggleMenu() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
}

// Select navigates to id and closes the mobile menu.
func (s *Shell) Select(id pages.PageID) {
	s.router.SetCurrentPage(id)
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}
