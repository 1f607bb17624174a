package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/config"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/engine"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/platform"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

// offlineRecorder confirms completions locally when no platform API is
// configured. Development only; real runs must go through the API so
// instructor aggregates see confirmed state.
type offlineRecorder struct{}

func (offlineRecorder) RecordCompletion(_ context.Context, _ string) error { return nil }

// buildEngine loads config, opens the progress store, fetches the
// subject catalog and wires the engine.
func buildEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	subject, _ := cmd.Flags().GetString("subject")
	if subject == "" {
		subject = cfg.Subject
	}
	if subject == "" {
		return nil, nil, fmt.Errorf("no subject configured: pass --subject or set it in %s", cfgPath)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := progress.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open progress store: %w", err)
	}

	opts := engine.Options{
		Subject:  subject,
		Store:    store,
		Recorder: offlineRecorder{},
	}

	ctx := cmd.Context()
	if catPath, _ := cmd.Flags().GetString("catalog"); catPath != "" {
		c, err := catalog.LoadFile(catPath)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		opts.Catalog = c
	} else if cfg.API.BaseURL != "" {
		client := platform.NewClient(platform.Config{
			BaseURL: cfg.API.BaseURL,
			Token:   cfg.API.Token,
			Timeout: time.Duration(cfg.API.Timeout),
		})
		items, err := client.ListContent(ctx, subject)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		opts.Catalog = catalog.New(items)
		opts.Recorder = client
		opts.FAQs = client
	} else if cfg.CatalogDir != "" {
		cats, err := catalog.LoadDir(cfg.CatalogDir)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		c, ok := cats[subject]
		if !ok {
			store.Close()
			return nil, nil, fmt.Errorf("subject %q not found in %s", subject, cfg.CatalogDir)
		}
		opts.Catalog = c
	} else {
		store.Close()
		return nil, nil, fmt.Errorf("no catalog source configured: set api.base_url or catalog_dir")
	}

	eng, err := engine.New(ctx, opts)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return eng, func() { store.Close() }, nil
}
