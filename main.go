package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/chorus/internal/app"
	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/config"
	"github.com/llehouerou/chorus/internal/embed"
	"github.com/llehouerou/chorus/internal/errmsg"
	"github.com/llehouerou/chorus/internal/icons"
	"github.com/llehouerou/chorus/internal/logging"
	"github.com/llehouerou/chorus/internal/notify"
	"github.com/llehouerou/chorus/internal/session"
	"github.com/llehouerou/chorus/internal/web"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "chorus",
		Short:         "Music recommendations by category",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (loaded after the default locations)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the recommender as a web page and JSON API",
		RunE:  runServe,
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deps holds what both shells share.
type deps struct {
	cfg      *config.Config
	registry *catalog.Registry
	provider *catalog.Provider
	player   embed.Player
}

func loadDeps() (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	variants := catalog.DefaultVariants
	if len(cfg.Variants) > 0 {
		variants = make([]catalog.Variant, 0, len(cfg.Variants))
		for _, v := range cfg.Variants {
			variants = append(variants, catalog.Variant{Description: v.Description, File: v.File, Curated: v.Curated})
		}
	}
	registry, err := catalog.NewRegistry(variants)
	if err != nil {
		return nil, err
	}

	ec := cfg.GetEmbedConfig()
	return &deps{
		cfg:      cfg,
		registry: registry,
		provider: catalog.NewProvider(os.DirFS(cfg.GetDataDir())),
		player:   embed.Player{BaseURL: ec.BaseURL, Width: ec.Width, Height: ec.Height},
	}, nil
}

func (d *deps) newSession() (*session.Session, error) {
	picker := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // not security sensitive
	return session.New(d.registry, d.provider, d.cfg.GetTrendingFile(), picker)
}

func runTUI(_ *cobra.Command, _ []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}

	// The terminal owns stdout and stderr.
	lc := d.cfg.GetLogConfig()
	logFile, err := logging.FileWriter(lc.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logging.Init(logging.Config{Level: lc.Level, Format: lc.Format, Output: logFile})

	sess, err := d.newSession()
	if err != nil {
		logging.Error().Err(err).Msg("initial load")
		return &app.Error{Op: errmsg.OpInitialize, Err: err}
	}

	icons.Init(d.cfg.Icons)
	opts := app.Options{Player: d.player}
	if d.cfg.Notify {
		notifier, err := notify.New()
		if err != nil {
			return fmt.Errorf("desktop notifications: %w", err)
		}
		opts.Notifier = notifier
	}

	p := tea.NewProgram(app.New(sess, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if m, ok := final.(app.Model); ok {
		if err := m.Err(); err != nil {
			logging.Error().Err(err).Msg("exited on error")
			return err
		}
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps()
	if err != nil {
		return err
	}

	lc := d.cfg.GetLogConfig()
	logging.Init(logging.Config{Level: lc.Level, Format: lc.Format})

	// Fail at startup rather than on a visitor's first request.
	if err := d.provider.Preload(d.cfg.GetTrendingFile(), d.registry.All()); err != nil {
		return &app.Error{Op: errmsg.OpServe, Err: err}
	}

	sc := d.cfg.GetServerConfig()
	srv := web.New(web.Options{
		Addr:           sc.Addr,
		SessionTTL:     time.Duration(sc.SessionTTLMinutes) * time.Minute,
		Player:         d.player,
		Registry:       d.registry,
		TrendingFile:   d.cfg.GetTrendingFile(),
		NewSession:     d.newSession,
		AllowedOrigins: sc.AllowedOrigins,
		RateLimit:      sc.RateLimit,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
