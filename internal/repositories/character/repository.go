// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-equipment/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/character"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for a nil character
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character, including its inventory, by ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update persists the current state of an existing character
	// Returns errors.InvalidArgument for a nil character
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *character.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *character.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID ids.CharacterID
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *character.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *character.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *character.Character
}
