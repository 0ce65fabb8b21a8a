// Package srd imports item prototypes from the D&D 5e SRD API
package srd

//go:generate mockgen -destination=mock/mock_api.go -package=srdmock github.com/KirkDiggler/rpg-equipment/internal/clients/srd API

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

// DefaultBaseURL is the public SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// Importer turns SRD equipment into item prototypes
type Importer interface {
	// ImportCategory converts every weapon and armor of an SRD equipment
	// category, e.g. "simple-weapons" or "light-armor". Entries that map to no
	// item type are skipped.
	ImportCategory(ctx context.Context, category string) ([]*equipment.ItemPrototype, error)
}

// API is the part of the dnd5e-api client the importer uses
type API interface {
	GetEquipmentCategory(key string) (*entities.EquipmentCategory, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Config contains configuration options for the SRD importer.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Concurrency caps parallel equipment lookups (optional, defaults to 8)
	Concurrency int

	// API replaces the HTTP client, mostly for tests
	API API
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	return nil
}

type importer struct {
	api         API
	concurrency int
}

// New creates an SRD importer with the given configuration.
func New(cfg *Config) (Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	api := cfg.API
	if api == nil {
		base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		api = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return &importer{api: api, concurrency: cfg.Concurrency}, nil
}

func (i *importer) ImportCategory(ctx context.Context, category string) ([]*equipment.ItemPrototype, error) {
	if category == "" {
		return nil, errors.InvalidArgument("category is required")
	}

	cat, err := i.api.GetEquipmentCategory(category)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get SRD equipment category "+category)
	}
	if cat == nil {
		return nil, errors.NotFoundf("SRD equipment category %s not found", category)
	}

	slog.InfoContext(ctx, "loading SRD equipment", "category", category, "count", len(cat.Equipment))

	// Results keep the category's order
	results := make([]*equipment.ItemPrototype, len(cat.Equipment))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for idx, ref := range cat.Equipment {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item, err := i.api.GetEquipment(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get SRD equipment "+ref.Key)
			}

			prototype, err := toItemPrototype(item)
			if err != nil {
				return errors.Wrapf(err, "failed to convert SRD equipment %s", ref.Key)
			}
			if prototype == nil {
				slog.DebugContext(gctx, "skipping SRD equipment without an item type", "equipment", ref.Key)
				return nil
			}

			results[idx] = prototype
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	prototypes := make([]*equipment.ItemPrototype, 0, len(results))
	for _, p := range results {
		if p != nil {
			prototypes = append(prototypes, p)
		}
	}
	return prototypes, nil
}
