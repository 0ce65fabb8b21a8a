// Package item implements item creation and lookup
package item

//go:generate mockgen -destination=mock/mock_service.go -package=itemmock github.com/KirkDiggler/rpg-equipment/internal/services/item Service

import (
	"context"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// EventTypeItemCreated is published on the event bus once an item is stored
const EventTypeItemCreated = "item.created"

// Service defines the interface for item operations
type Service interface {
	// Create makes a new item from a prototype and puts it into the creating
	// character's inventory
	Create(ctx context.Context, cmd *CreateItemCommand) (*CreateItemOutput, error)

	// Get returns a previously created item
	Get(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// ListCreatedItems returns every item a character has created
	ListCreatedItems(ctx context.Context, input *ListCreatedItemsInput) (*ListCreatedItemsOutput, error)

	// ListPrototypes returns the prototypes items can be created from
	ListPrototypes(ctx context.Context, input *ListPrototypesInput) (*ListPrototypesOutput, error)
}

// CreateItemCommand asks for one item to be created
type CreateItemCommand struct {
	ItemPrototypeID    ids.ItemPrototypeID
	CreatorCharacterID ids.CharacterID
}

// CreateItemOutput defines the response for creating an item
type CreateItemOutput struct {
	Item *equipment.Item
}

// GetItemInput defines the request for getting an item
type GetItemInput struct {
	ItemID ids.ItemID
}

// GetItemOutput defines the response for getting an item
type GetItemOutput struct {
	Item *equipment.Item
}

// ListCreatedItemsInput defines the request for listing a character's items
type ListCreatedItemsInput struct {
	CharacterID ids.CharacterID
}

// ListCreatedItemsOutput defines the response for listing a character's items
type ListCreatedItemsOutput struct {
	Items []*equipment.Item
}

// ListPrototypesInput defines the request for listing prototypes
type ListPrototypesInput struct{}

// ListPrototypesOutput defines the response for listing prototypes
type ListPrototypesOutput struct {
	ItemPrototypes []*equipment.ItemPrototype
}
