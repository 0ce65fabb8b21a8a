package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/services/item"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

func TestFactoryCreateCopiesPrototype(t *testing.T) {
	prototype := testutils.CreateWoodenClubPrototype(t)
	id := ids.MustItemID(testutils.WoodenClubItemID)
	creator := ids.MustCharacterID(testutils.TestCharacterID)

	created := item.NewFactory().Create(prototype, id, creator)
	require.NotNil(t, created)

	assert.Equal(t, id, created.ID())
	assert.Equal(t, prototype.ID(), created.PrototypeID())
	assert.Equal(t, creator, created.CreatorCharacterID())
	assert.Equal(t, "Wooden club", created.Name())
	assert.Equal(t, "Club made from wood", created.Description())
	assert.Equal(t, `images\equipment\main_hand\1club.png`, created.ImageFilePath())
	assert.Equal(t, equipment.ItemTypeMainHand, created.Type())
	assert.Equal(t, []equipment.ItemEffect{equipment.Damage(5)}, created.Effects())
	assert.Equal(t, 30, created.Price().Amount())
}

func TestFactoryCreateDoesNotShareEffects(t *testing.T) {
	prototype := testutils.CreateWoodenClubPrototype(t)

	created := item.NewFactory().Create(prototype,
		ids.MustItemID(testutils.WoodenClubItemID),
		ids.MustCharacterID(testutils.TestCharacterID))

	effects := created.Effects()
	effects[0] = equipment.Health(99)

	assert.Equal(t, []equipment.ItemEffect{equipment.Damage(5)}, created.Effects())
	assert.Equal(t, []equipment.ItemEffect{equipment.Damage(5)}, prototype.Effects())
}

func TestFactoryCreatePanicsWithoutPrototype(t *testing.T) {
	assert.Panics(t, func() {
		item.NewFactory().Create(nil,
			ids.MustItemID(testutils.WoodenClubItemID),
			ids.MustCharacterID(testutils.TestCharacterID))
	})
}

func TestFactoryCreatePanicsOnZeroID(t *testing.T) {
	assert.Panics(t, func() {
		item.NewFactory().Create(testutils.CreateWoodenClubPrototype(t),
			ids.ItemID{},
			ids.MustCharacterID(testutils.TestCharacterID))
	})
}
