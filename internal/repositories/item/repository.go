// Package item provides the interface for persisting created items
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemrepomock github.com/KirkDiggler/rpg-equipment/internal/repositories/item Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// Repository defines the interface for item persistence
type Repository interface {
	// NextIdentity returns a fresh, never used item ID. It does not touch storage.
	NextIdentity() ids.ItemID

	// Add stores a newly created item
	// Returns errors.InvalidArgument for a nil item
	// Returns errors.AlreadyExists if an item with the same ID exists
	// Returns errors.Internal for storage failures
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCreator returns every item created by a character
	ListByCreator(ctx context.Context, input ListByCreatorInput) (*ListByCreatorOutput, error)
}

// AddInput defines the input for adding an item
type AddInput struct {
	Item *equipment.Item
}

// AddOutput defines the output for adding an item
type AddOutput struct{}

// GetInput defines the input for getting an item
type GetInput struct {
	ID ids.ItemID
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *equipment.Item
}

// ListByCreatorInput defines the input for listing a character's created items
type ListByCreatorInput struct {
	CharacterID ids.CharacterID
}

// ListByCreatorOutput defines the output for listing a character's created items
type ListByCreatorOutput struct {
	Items []*equipment.Item
}
