package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

//go:generate mockgen -destination=mock/mock_factory.go -package=itemmock github.com/KirkDiggler/rpg-equipment/internal/services/item Factory

// Factory turns a prototype into a concrete item
type Factory interface {
	// Create copies the prototype's values into a new item owned by creator.
	// It has no side effects.
	Create(prototype *equipment.ItemPrototype, id ids.ItemID, creator ids.CharacterID) *equipment.Item
}

type factory struct{}

// NewFactory returns the default item factory
func NewFactory() Factory {
	return &factory{}
}

func (f *factory) Create(prototype *equipment.ItemPrototype, id ids.ItemID, creator ids.CharacterID) *equipment.Item {
	if prototype == nil {
		panic("item: factory called with nil prototype")
	}

	// Effects() already hands out a copy
	item, err := equipment.NewItem(&equipment.ItemData{
		ID:                 id,
		PrototypeID:        prototype.ID(),
		CreatorCharacterID: creator,
		Name:               prototype.Name(),
		Description:        prototype.Description(),
		ImageFilePath:      prototype.ImageFilePath(),
		Type:               prototype.Type(),
		Effects:            prototype.Effects(),
		Price:              prototype.Price().Amount(),
	})
	if err != nil {
		// A valid prototype always yields a valid item, so this is a caller bug
		// such as a zero id.
		panic(fmt.Sprintf("item: cannot build item %s from prototype %s: %v", id, prototype.ID(), err))
	}

	return item
}
