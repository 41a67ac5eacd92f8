// Package web serves the site's pages, the contact form post-back, the hero
// rotation socket and static assets.
package web

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pinecoastbbq/pinecoast/internal/app"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
)

// Options configures the page handlers.
type Options struct {
	AssetsDir  string
	HeroImages []string // asset URLs, in rotation order
	HeroPeriod time.Duration
}

// Site serves rendered pages for each visitor's session.
type Site struct {
	sessions *app.Sessions
	renderer *pages.Renderer
	opts     Options
}

// New creates a Site.
func New(sessions *app.Sessions, renderer *pages.Renderer, opts Options) *Site {
	return &Site{sessions: sessions, renderer: renderer, opts: opts}
}

// RegisterRoutes mounts the page, contact, socket and asset routes.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handlePage)
	r.Get("/ws/hero", s.handleHero)
	if s.opts.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.opts.AssetsDir))))
	}
	r.Post("/"+string(pages.ContactUs), s.handleContact)
	r.Get("/{page}", s.handlePage)
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	a := s.sessions.Get(w, r)
	id := pages.ParsePageID(chi.URLParam(r, "page"))
	if r.URL.Query().Get("menu") == "toggle" {
		a.ToggleMenuOn(id)
	} else {
		a.Navigate(id)
	}
	s.render(w, a)
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	a := s.sessions.Get(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	a.Navigate(pages.ContactUs)
	a.Flow.SetName(r.PostForm.Get("name"))
	a.Flow.SetEmail(r.PostForm.Get("email"))
	a.Flow.SetMessage(r.PostForm.Get("message"))

	st := a.Flow.Submit(r.Context())
	log.Printf("web: contact submit: %s", st.Kind)
	s.render(w, a)
}

func (s *Site) render(w http.ResponseWriter, a *app.App) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, a.View()); err != nil {
		log.Printf("web: rendering %s: %v", a.Page(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
