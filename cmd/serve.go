package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pinecoastbbq/pinecoast/internal/app"
	"github.com/pinecoastbbq/pinecoast/internal/contact"
	"github.com/pinecoastbbq/pinecoast/internal/menu"
	"github.com/pinecoastbbq/pinecoast/internal/pages"
	"github.com/pinecoastbbq/pinecoast/internal/server"
	"github.com/pinecoastbbq/pinecoast/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website and contact API",
	Long:  `Starts the HTTP server that renders the site's pages, pushes hero image rotation over a websocket, and accepts contact form submissions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		opts, err := appOptions(cfg, "/")
		if err != nil {
			return err
		}
		opts.HeroSocket = "/ws/hero"

		renderer, err := pages.NewRenderer(menu.MustLoad())
		if err != nil {
			return fmt.Errorf("preparing pages: %w", err)
		}

		api := contact.NewAPI(contact.NewNotifier(cfg))
		if cfg.BaseURL == "" {
			// Same origin: post-backs reach the contact API in process.
			opts.BaseURL = contact.LocalBaseURL
			opts.Client = contact.NewLocalClient(api.Handler(), cfg.RequestTimeout)
		}

		sessions := app.NewSessions(cfg.SessionTTL, app.NewFactory(opts))
		defer sessions.Close()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowAll:       cfg.AllowAllOrigins,
			RequestTimeout: cfg.RequestTimeout,
		})

		// Register feature routes.
		r := srv.Router()
		api.RegisterRoutes(r)
		web.New(sessions, renderer, web.Options{
			AssetsDir:  cfg.AssetsDir,
			HeroImages: opts.HeroImages,
			HeroPeriod: cfg.RotationInterval,
		}).RegisterRoutes(r)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "pinecoast v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.AssetsDir)
		fmt.Fprintf(os.Stderr, "  Hero images: %d every %s\n", len(opts.HeroImages), cfg.RotationInterval)
		if cfg.BaseURL != "" {
			fmt.Fprintf(os.Stderr, "  Contact API: %s\n", contact.Endpoint(cfg.BaseURL))
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
