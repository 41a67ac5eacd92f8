// Package site exports the pages as a static site.
package site

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pinecoastbbq/pinecoast/internal/app"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
	"github.com/pinecoastbbq/pinecoast/internal/progress"
)

// Generator renders every page to OutputDir.
type Generator struct {
	OutputDir string
	AssetsDir string // copied to OutputDir/assets when set
	Renderer  *pages.Renderer
	Options   app.Options
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator. The app options are forced into static
// mode: no hero socket, and the contact form posts from the browser.
func NewGenerator(outputDir, assetsDir string, r *pages.Renderer, opts app.Options) *Generator {
	opts.Static = true
	opts.HeroSocket = ""
	return &Generator{
		OutputDir: outputDir,
		AssetsDir: assetsDir,
		Renderer:  r,
		Options:   opts,
		Reporter:  progress.Nop{},
	}
}

// Generate builds the site. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	a := app.New(g.Options)
	defer a.Close()

	g.Reporter.Start(len(pages.All))
	count := 0
	for i, id := range pages.All {
		a.Navigate(id)

		var buf bytes.Buffer
		if err := g.Renderer.Render(&buf, a.View()); err != nil {
			return count, err
		}

		dest := filepath.Join(g.OutputDir, filepath.FromSlash(id.Path()), "index.html")
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return count, fmt.Errorf("creating directory for %s: %w", id, err)
		}
		if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
			return count, fmt.Errorf("writing %s: %w", dest, err)
		}
		count++
		g.Reporter.Update(i+1, string(id))
	}
	g.Reporter.Finish()

	if g.AssetsDir != "" {
		if err := copyDir(g.AssetsDir, filepath.Join(g.OutputDir, "assets")); err != nil {
			return count, fmt.Errorf("copying assets: %w", err)
		}
	}
	return count, nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
