package nav

import (
	"testing"

	"github.com/pinecoastbbq/pinecoast/internal/pages"
)

func TestLinks(t *testing.T) {
	want := []Link{
		{"Home", pages.Home},
		{"Menu", pages.Menu},
		{"Our Story", pages.OurStory},
		{"Contact Us", pages.ContactUs},
	}
	got := Links()
	if len(got) != len(want) {
		t.Fatalf("got %d links, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestToggleThenSelect(t *testing.T) {
	router := pages.NewRouter()
	s := NewShell(router)

	if s.IsMenuOpen() {
		t.Fatal("menu starts open")
	}
	s.ToggleMenu()
	if !s.IsMenuOpen() {
		t.Fatal("toggle did not open the menu")
	}

	s.Select(pages.OurStory)
	if s.IsMenuOpen() {
		t.Error("menu still open after select")
	}
	if router.CurrentPage() != pages.OurStory {
		t.Errorf("page = %q, want our-story", router.CurrentPage())
	}
}

func TestToggleTwiceCloses(t *testing.T) {
	s := NewShell(pages.NewRouter())
	s.ToggleMenu()
	s.ToggleMenu()
	if s.IsMenuOpen() {
		t.Error("menu open after two toggles")
	}
}

func TestSelectWithMenuClosed(t *testing.T) {
	router := pages.NewRouter()
	s := NewShell(router)
	s.Select(pages.Menu)
	if s.IsMenuOpen() {
		t.Error("select opened the menu")
	}
	if router.CurrentPage() != pages.Menu {
		t.Errorf("page = %q", router.CurrentPage())
	}
}
