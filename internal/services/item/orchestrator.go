package item

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/metrics"
	characterrepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/character"
	itemrepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
)

// Config holds the dependencies for the item orchestrator
type Config struct {
	CharacterRepo     characterrepo.Repository
	ItemRepo          itemrepo.Repository
	ItemPrototypeRepo prototyperepo.Repository

	// Factory defaults to NewFactory()
	Factory Factory

	// EventBus and Metrics are optional
	EventBus events.EventBus
	Metrics  *metrics.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.ItemPrototypeRepo == nil {
		vb.RequiredField("ItemPrototypeRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo     characterrepo.Repository
	itemRepo          itemrepo.Repository
	itemPrototypeRepo prototyperepo.Repository
	factory           Factory
	eventBus          events.EventBus
	metrics           *metrics.Metrics
}

// NewOrchestrator creates a new item orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	f := cfg.Factory
	if f == nil {
		f = NewFactory()
	}

	return &orchestrator{
		characterRepo:     cfg.CharacterRepo,
		itemRepo:          cfg.ItemRepo,
		itemPrototypeRepo: cfg.ItemPrototypeRepo,
		factory:           f,
		eventBus:          cfg.EventBus,
		metrics:           cfg.Metrics,
	}, nil
}

func (o *orchestrator) Create(ctx context.Context, cmd *CreateItemCommand) (*CreateItemOutput, error) {
	start := time.Now()

	out, err := o.create(ctx, cmd)
	if err != nil {
		o.metrics.ItemCreateFailed(errors.GetCode(err).String())
		return nil, err
	}

	o.metrics.ItemCreated(out.Item.Type().String(), time.Since(start))
	return out, nil
}

func (o *orchestrator) create(ctx context.Context, cmd *CreateItemCommand) (*CreateItemOutput, error) {
	if cmd == nil {
		return nil, errors.InvalidArgument("command is required")
	}

	vb := errors.NewValidationBuilder()
	if cmd.ItemPrototypeID.IsZero() {
		vb.RequiredField("itemPrototypeID")
	}
	if cmd.CreatorCharacterID.IsZero() {
		vb.RequiredField("creatorCharacterID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: cmd.CreatorCharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", cmd.CreatorCharacterID)
	}
	creator := charOut.Character

	protoOut, err := o.itemPrototypeRepo.Get(ctx, prototyperepo.GetInput{ID: cmd.ItemPrototypeID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item prototype %s", cmd.ItemPrototypeID)
	}
	prototype := protoOut.ItemPrototype

	id := o.itemRepo.NextIdentity()

	item := o.factory.Create(prototype, id, creator.ID())

	creator.AddItemToInventory(item)

	if _, err := o.itemRepo.Add(ctx, itemrepo.AddInput{Item: item}); err != nil {
		return nil, errors.Wrapf(err, "failed to store item %s", id)
	}

	// The item is already stored if this fails; nothing is rolled back.
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: creator}); err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", creator.ID())
	}

	slog.InfoContext(ctx, "item created",
		"item_id", id.String(),
		"item_prototype_id", prototype.ID().String(),
		"character_id", creator.ID().String(),
		"item_type", item.Type().String())

	if o.eventBus != nil {
		event := events.NewGameEvent(EventTypeItemCreated, creator, item)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish item created event",
				"item_id", id.String(),
				"error", err)
			o.metrics.EventPublishFailed(EventTypeItemCreated)
		}
	}

	return &CreateItemOutput{Item: item}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID.IsZero() {
		return nil, errors.InvalidArgument("itemID is required")
	}

	out, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %s", input.ItemID)
	}

	return &GetItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) ListCreatedItems(ctx context.Context, input *ListCreatedItemsInput) (*ListCreatedItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID.IsZero() {
		return nil, errors.InvalidArgument("characterID is required")
	}

	out, err := o.itemRepo.ListByCreator(ctx, itemrepo.ListByCreatorInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items of character %s", input.CharacterID)
	}

	return &ListCreatedItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListPrototypes(ctx context.Context, _ *ListPrototypesInput) (*ListPrototypesOutput, error) {
	out, err := o.itemPrototypeRepo.List(ctx, prototyperepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list item prototypes")
	}

	return &ListPrototypesOutput{ItemPrototypes: out.ItemPrototypes}, nil
}
