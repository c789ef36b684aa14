package atlas

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/journal-atlas/pkg/models/domain"
	"github.com/de-tools/journal-atlas/pkg/services/config"
	"github.com/de-tools/journal-atlas/pkg/services/journal"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb/entries"
)

// Explorer is the entry point for multi-journal setups: it lists the journals
// declared in the profiles file and hands out journal-bound services.
type Explorer interface {
	ListJournals(ctx context.Context) ([]domain.Journal, error)
	GetJournalService(ctx context.Context, j domain.Journal) (journal.Service, error)
}

type atlasExplorer struct {
	registry config.Registry
	db       *sql.DB
}

func NewExplorer(registry config.Registry, db *sql.DB) Explorer {
	return &atlasExplorer{
		registry: registry,
		db:       db,
	}
}

func (a *atlasExplorer) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	profiles, err := a.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	var journals []domain.Journal
	for _, profile := range profiles {
		journals = append(journals, domain.Journal{Name: profile.Name})
	}
	return journals, nil
}

func (a *atlasExplorer) GetJournalService(ctx context.Context, j domain.Journal) (journal.Service, error) {
	profile, err := a.registry.GetProfile(ctx, j.Name)
	if err != nil {
		return nil, err
	}

	store, err := entries.NewJournalStore(a.db, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("create entry store for journal %q: %w", profile.Name, err)
	}

	return journal.NewService(domain.Journal{Name: profile.Name}, store), nil
}
