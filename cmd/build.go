package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinecoastbbq/pinecoast/internal/menu"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
	"github.com/pinecoastbbq/pinecoast/internal/progress"
	"github.com/pinecoastbbq/pinecoast/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the website as static HTML",
	Long:  `Renders every page to a static directory that can be hosted anywhere. The contact form posts directly to the configured base_url.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "public", "output directory")
	buildCmd.Flags().String("base-path", "/", "URL path the site is hosted under")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	basePath, _ := cmd.Flags().GetString("base-path")
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	if cfg.BaseURL == "" {
		fmt.Println("Warning: base_url is not set; the contact form will post to /api/contact on the hosting origin")
	}

	opts, err := appOptions(cfg, basePath)
	if err != nil {
		return err
	}

	renderer, err := pages.NewRenderer(menu.MustLoad())
	if err != nil {
		return fmt.Errorf("preparing pages: %w", err)
	}

	generator := site.NewGenerator(outputDir, cfg.AssetsDir, renderer, opts)
	generator.Reporter = progress.NewReporter()
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
