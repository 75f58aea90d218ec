package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/verilens/verilens/internal/factcheck"
	"github.com/verilens/verilens/internal/store"
	"github.com/verilens/verilens/pkg/llm"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "verilens.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initChecker builds the analysis pipeline. The provider credential is
// required here; its absence is a fatal startup error.
func initChecker() (*factcheck.Checker, error) {
	client, err := llm.New(llm.Options{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey(),
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	prompts, err := factcheck.NewComposer(cfg.Prompts.Dir)
	if err != nil {
		return nil, err
	}

	return factcheck.NewChecker(client, prompts), nil
}
