// Package menu holds the restaurant's static menu content.
package menu

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

// Layout controls how a category's plain options are presented.
type Layout string

const (
	LayoutList    Layout = ""
	LayoutGrid    Layout = "grid"
	LayoutColumns Layout = "columns"
)

// Item is a single dish with a description and an optional price.
type Item struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Price       string `yaml:"price,omitempty" json:"price,omitempty"`
}

// DescriptionLines splits a multi-line description for display.
func (i Item) DescriptionLines() []string {
	return strings.Split(i.Description, "\n")
}

// Category is a titled group of items or plain options.
type Category struct {
	Title    string   `yaml:"title" json:"title"`
	Subtitle string   `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Layout   Layout   `yaml:"layout,omitempty" json:"layout,omitempty"`
	Items    []Item   `yaml:"items,omitempty" json:"items,omitempty"`
	Options  []string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Menu is the full menu: introductory paragraphs followed by categories in
// display order.
type Menu struct {
	Introduction []string   `yaml:"introduction" json:"introduction"`
	Categories   []Category `yaml:"categories" json:"categories"`
}

// Load decodes the embedded menu.
func Load() (*Menu, error) {
	return Parse(menuYAML)
}

// MustLoad is like Load but panics on error. The embedded menu is fixed at
// build time, so a failure here is a programming error.
func MustLoad() *Menu {
	m, err := Load()
	if err != nil {
		panic(err)
	}
	return m
}

// Parse decodes a menu document.
func Parse(data []byte) (*Menu, error) {
	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding menu: %w", err)
	}
	return &m, nil
}

// Category looks up a category by title, ignoring case.
func (m *Menu) Category(title string) (Category, bool) {
	for _, c := range m.Categories {
		if strings.EqualFold(c.Title, title) {
			return c, true
		}
	}
	return Category{}, false
}
