package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/pinecoastbbq/pinecoast/internal/menu"
)

// Renderer turns a View into a full HTML page.
type Renderer struct {
	tmpl *template.Template
	menu *menu.Menu
	copy *Copy
}

// pageData is passed to the per-page body templates.
type pageData struct {
	View
	Menu *menu.Menu
	Copy *Copy
}

// NewRenderer parses the page templates and renders the markdown copy.
func NewRenderer(m *menu.Menu) (*Renderer, error) {
	c, err := LoadCopy()
	if err != nil {
		return nil, fmt.Errorf("loading copy: %w", err)
	}

	tmpl := template.New("pages")
	for _, src := range []string{layoutTemplate, homeTemplate, menuTemplate, storyTemplate, contactTemplate} {
		if _, err := tmpl.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
	}

	return &Renderer{tmpl: tmpl, menu: m, copy: c}, nil
}

// Render writes the page for v. Unknown pages render the home page.
func (r *Renderer) Render(w io.Writer, v View) error {
	v.Page = ParsePageID(string(v.Page))

	var name string
	switch v.Page {
	case Home:
		name = "home"
	case Menu:
		name = "menu"
	case OurStory:
		name = "story"
	case ContactUs:
		name = "contact"
	default:
		v.Page, name = Home, "home"
	}

	var body bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&body, name, pageData{View: v, Menu: r.menu, Copy: r.copy}); err != nil {
		return fmt.Errorf("rendering %s: %w", v.Page, err)
	}

	data := layoutData{
		View:  v,
		Title: v.Page.Heading(),
		Body:  template.HTML(body.String()),
	}
	if err := r.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering layout: %w", err)
	}
	return nil
}
