package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/character"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// Identifiers shared by fixtures
const (
	WoodenClubPrototypeID = "598d1570-e0e3-40d1-979b-64e48626f6f6"
	WoodenClubItemID      = "598d1570-e0e3-40d1-979b-64e48626f777"
	TestCharacterID       = "65976e46-d2eb-4373-ba69-b7c9ea81b56f"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Brom Ironfist"
)

// WoodenClubData returns the data of the wooden club prototype
func WoodenClubData() *equipment.ItemPrototypeData {
	return &equipment.ItemPrototypeData{
		ID:            ids.MustItemPrototypeID(WoodenClubPrototypeID),
		Name:          "Wooden club",
		Description:   "Club made from wood",
		ImageFilePath: `images\equipment\main_hand\1club.png`,
		Type:          equipment.ItemTypeMainHand,
		Effects:       []equipment.ItemEffect{equipment.Damage(5)},
		Price:         30,
	}
}

// CreateWoodenClubPrototype builds the wooden club prototype
func CreateWoodenClubPrototype(t *testing.T) *equipment.ItemPrototype {
	t.Helper()
	prototype, err := equipment.NewItemPrototype(WoodenClubData())
	require.NoError(t, err)
	return prototype
}

// CreateWoodenClubItem builds an item created from the wooden club prototype
func CreateWoodenClubItem(t *testing.T, id string) *equipment.Item {
	t.Helper()
	proto := WoodenClubData()
	item, err := equipment.NewItem(&equipment.ItemData{
		ID:                 ids.MustItemID(id),
		PrototypeID:        proto.ID,
		CreatorCharacterID: ids.MustCharacterID(TestCharacterID),
		Name:               proto.Name,
		Description:        proto.Description,
		ImageFilePath:      proto.ImageFilePath,
		Type:               proto.Type,
		Effects:            proto.Effects,
		Price:              proto.Price,
	})
	require.NoError(t, err)
	return item
}

// CreateTestCharacter builds a character with an empty inventory
func CreateTestCharacter(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.LoadFromData(&character.Data{
		ID:       ids.MustCharacterID(TestCharacterID),
		Name:     TestCharacterName,
		PlayerID: "player-test-001",
	})
	require.NoError(t, err)
	return c
}
