package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/metrics"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
)

// SyncerConfig holds the dependencies of a Syncer
type SyncerConfig struct {
	Repo    prototyperepo.Repository
	Metrics *metrics.Metrics
}

// Validate ensures all required dependencies are provided
func (c *SyncerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	return vb.Build()
}

// SyncResult reports what a sync wrote
type SyncResult struct {
	Created int
	Updated int
}

// Syncer writes prototypes into the prototype repository
type Syncer struct {
	repo    prototyperepo.Repository
	metrics *metrics.Metrics
}

// NewSyncer creates a Syncer
func NewSyncer(cfg *SyncerConfig) (*Syncer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Syncer{repo: cfg.Repo, metrics: cfg.Metrics}, nil
}

// Sync upserts every prototype. source labels where they came from, e.g.
// "yaml" or "srd". It stops at the first failed write.
func (s *Syncer) Sync(ctx context.Context, source string, prototypes []*equipment.ItemPrototype) (*SyncResult, error) {
	result := &SyncResult{}

	for _, p := range prototypes {
		out, err := s.repo.Save(ctx, prototyperepo.SaveInput{ItemPrototype: p})
		if err != nil {
			s.metrics.PrototypesSynced(source, result.Created+result.Updated)
			return result, errors.Wrapf(err, "failed to save item prototype %s", p.ID())
		}
		if out.Created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.metrics.PrototypesSynced(source, result.Created+result.Updated)
	slog.InfoContext(ctx, "item prototypes synced",
		"source", source,
		"created", result.Created,
		"updated", result.Updated)

	return result, nil
}

// SyncCatalog converts and syncs a loaded catalog
func (s *Syncer) SyncCatalog(ctx context.Context, c *Catalog) (*SyncResult, error) {
	prototypes, err := c.ItemPrototypes()
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, "yaml", prototypes)
}
