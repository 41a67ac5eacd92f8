package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pinecoastbbq/pinecoast/internal/contact"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
)

func testOptions() Options {
	return Options{
		BaseURL:    "https://api.pinecoastbbq.com",
		HeroImages: []string{"/assets/fire.jpg", "/assets/wings.jpg"},
		HeroPeriod: 5 * time.Second,
		HeroSocket: "/ws/hero",
		LogoURL:    "/assets/logo.png",
	}
}

func TestNewShowsHome(t *testing.T) {
	a := New(testOptions())
	if a.Page() != pages.Home {
		t.Errorf("page = %q", a.Page())
	}
	v := a.View()
	if v.BasePath != "/" {
		t.Errorf("BasePath = %q", v.BasePath)
	}
	if v.MenuOpen {
		t.Error("menu starts open")
	}
	if v.Hero.PeriodMS != 5000 {
		t.Errorf("PeriodMS = %d", v.Hero.PeriodMS)
	}
}

func TestNavigateClosesMenu(t *testing.T) {
	a := New(testOptions())
	a.ToggleMenu()
	if !a.View().MenuOpen {
		t.Fatal("toggle did not open menu")
	}
	a.Navigate(pages.ContactUs)

	v := a.View()
	if v.MenuOpen {
		t.Error("menu open after navigate")
	}
	if v.Page != pages.ContactUs {
		t.Errorf("page = %q", v.Page)
	}
}

func TestViewLinks(t *testing.T) {
	a := New(testOptions())
	a.Navigate(pages.Menu)
	v := a.View()

	if len(v.Nav) != 4 {
		t.Fatalf("got %d nav links", len(v.Nav))
	}
	for _, l := range v.Nav {
		if l.Active != (l.Page == pages.Menu) {
			t.Errorf("link %s active = %v", l.Page, l.Active)
		}
	}
	if v.Nav[0].Href != "/" || v.Nav[2].Href != "/our-story/" {
		t.Errorf("hrefs = %q, %q", v.Nav[0].Href, v.Nav[2].Href)
	}
	if v.ToggleHref != "/menu/?menu=toggle" {
		t.Errorf("ToggleHref = %q", v.ToggleHref)
	}
	if v.Contact.Action != "/contact-us/" || v.Contact.APIEndpoint != "" {
		t.Errorf("contact = %+v", v.Contact)
	}
}

func TestViewStatic(t *testing.T) {
	opts := testOptions()
	opts.Static = true
	opts.BasePath = "/bbq/"
	v := New(opts).View()

	if v.ToggleHref != "#mobile-nav" || !v.StaticMenu {
		t.Errorf("ToggleHref = %q, StaticMenu = %v", v.ToggleHref, v.StaticMenu)
	}
	if v.Contact.APIEndpoint != "https://api.pinecoastbbq.com/api/contact" {
		t.Errorf("APIEndpoint = %q", v.Contact.APIEndpoint)
	}
	if v.Nav[1].Href != "/bbq/menu/" {
		t.Errorf("menu href = %q", v.Nav[1].Href)
	}
}

func TestViewCarriesFlowState(t *testing.T) {
	a := New(testOptions())
	a.Flow.SetName("Jane")
	a.Flow.Submit(t.Context())

	v := a.View()
	if v.Contact.Form.Name != "Jane" {
		t.Errorf("form = %+v", v.Contact.Form)
	}
	if v.Contact.Status.Message != contact.MsgMissingFields {
		t.Errorf("status = %+v", v.Contact.Status)
	}
}

func newTestSessions(t *testing.T, ttl time.Duration) (*Sessions, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSessions(ttl, func() *App {
		a := New(testOptions())
		a.now = clock.Now
		a.lastSeen = clock.Now()
		return a
	})
	s.now = clock.Now
	t.Cleanup(s.Close)
	return s, clock
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestSessionsIssueCookie(t *testing.T) {
	s, _ := newTestSessions(t, time.Hour)

	w := httptest.NewRecorder()
	a := s.Get(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	if got := s.Get(w2, req); got != a {
		t.Error("cookie did not return the same App")
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("existing session re-issued a cookie")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestSessionsUnknownCookie(t *testing.T) {
	s, _ := newTestSessions(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	w := httptest.NewRecorder()
	s.Get(w, req)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value == "stale" {
		t.Errorf("expected a fresh session cookie, got %v", cookies)
	}
}

func TestSessionsSweep(t *testing.T) {
	s, clock := newTestSessions(t, 10*time.Minute)

	w := httptest.NewRecorder()
	s.Get(w, httptest.NewRequest(http.MethodGet, "/", nil))
	keep := w.Result().Cookies()[0]
	s.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	clock.Advance(6 * time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(keep)
	s.Get(httptest.NewRecorder(), req)

	clock.Advance(6 * time.Minute)
	if n := s.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSessionsCloseCancelsFlows(t *testing.T) {
	s, _ := newTestSessions(t, time.Hour)
	a := s.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	s.Close()
	s.Close()

	if s.Len() != 0 {
		t.Errorf("Len after Close = %d", s.Len())
	}
	a.Flow.SetName("Jane")
	a.Flow.SetEmail("jane@example.com")
	a.Flow.SetMessage("hi")
	if st := a.Flow.Submit(t.Context()); strings.HasPrefix(st.Message, "Sending") {
		t.Errorf("closed app started a submission: %+v", st)
	}
}

func TestNewFactoryKeepsConfiguredBase(t *testing.T) {
	s := NewSessions(time.Hour, NewFactory(testOptions()))
	t.Cleanup(s.Close)

	req := httptest.NewRequest(http.MethodGet, "/contact-us", nil)
	req.Host = "attacker.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	a := s.Get(httptest.NewRecorder(), req)
	if got := a.Flow.URL(); got != "https://api.pinecoastbbq.com/api/contact" {
		t.Errorf("URL = %q, want the configured API", got)
	}
}

func TestLeavingContactResetsFlow(t *testing.T) {
	a := New(testOptions())
	a.Navigate(pages.ContactUs)
	a.Flow.SetName("Jane")
	a.Flow.Submit(t.Context())

	a.Navigate(pages.ContactUs)
	if a.View().Contact.Status.Message != contact.MsgMissingFields {
		t.Fatal("staying on the contact page cleared the status")
	}

	a.Navigate(pages.Home)
	a.Navigate(pages.ContactUs)
	v := a.View()
	if v.Contact.Form != (contact.Form{}) || v.Contact.Status != (contact.Status{}) {
		t.Errorf("contact state survived navigation: form=%+v status=%+v", v.Contact.Form, v.Contact.Status)
	}

	a.Flow.SetName("Jane")
	a.ToggleMenuOn(pages.Menu)
	if !a.View().MenuOpen || a.Page() != pages.Menu {
		t.Fatal("ToggleMenuOn did not open the menu on the target page")
	}
	if a.Flow.Form().Name != "" {
		t.Error("toggling onto another page kept the typed name")
	}
}
