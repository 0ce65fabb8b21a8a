// Package itemprototype provides the interface for item prototype persistence
package itemprototype

//go:generate mockgen -destination=mock/mock_repository.go -package=itemprototypemock github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// Repository defines the interface for item prototype persistence
type Repository interface {
	// Get retrieves a prototype by ID
	// Returns errors.NotFound if the prototype doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a prototype
	// Returns errors.InvalidArgument for a nil prototype
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every stored prototype ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a prototype
type GetInput struct {
	ID ids.ItemPrototypeID
}

// GetOutput defines the output for getting a prototype
type GetOutput struct {
	ItemPrototype *equipment.ItemPrototype
}

// SaveInput defines the input for saving a prototype
type SaveInput struct {
	ItemPrototype *equipment.ItemPrototype
}

// SaveOutput defines the output for saving a prototype
type SaveOutput struct {
	// Created is false when an existing prototype was replaced
	Created bool
}

// ListInput defines the input for listing prototypes
type ListInput struct{}

// ListOutput defines the output for listing prototypes
type ListOutput struct {
	ItemPrototypes []*equipment.ItemPrototype
}
