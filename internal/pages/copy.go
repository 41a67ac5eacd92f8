package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed copy/*.md
var copyFS embed.FS

// Copy is the long-form page text, rendered from markdown.
type Copy struct {
	Home    template.HTML
	Story   template.HTML
	Contact template.HTML
}

// LoadCopy renders the embedded markdown copy.
func LoadCopy() (*Copy, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))

	render := func(name string) (template.HTML, error) {
		src, err := copyFS.ReadFile("copy/" + name)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", name, err)
		}
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return "", fmt.Errorf("rendering %s: %w", name, err)
		}
		return template.HTML(buf.String()), nil
	}

	var c Copy
	var err error
	if c.Home, err = render("home.md"); err != nil {
		return nil, err
	}
	if c.Story, err = render("story.md"); err != nil {
		return nil, err
	}
	if c.Contact, err = render("contact.md"); err != nil {
		return nil, err
	}
	return &c, nil
}
