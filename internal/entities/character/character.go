// Package character contains the character aggregate and its inventory
package character

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// EntityTypeCharacter is the rpg-toolkit entity type reported by characters
const EntityTypeCharacter = "character"

// Data is the persisted form of a Character. The inventory is stored with
// the character because the character owns its items.
type Data struct {
	ID        ids.CharacterID       `json:"id"`
	Name      string                `json:"name"`
	PlayerID  string                `json:"player_id,omitempty"`
	Inventory []*equipment.ItemData `json:"inventory,omitempty"`
	CreatedAt int64                 `json:"created_at,omitempty"`
	UpdatedAt int64                 `json:"updated_at,omitempty"`
}

// Character is the aggregate that owns an inventory of items.
// The inventory is only ever changed through AddItemToInventory.
type Character struct {
	id        ids.CharacterID
	name      string
	playerID  string
	inventory []*equipment.Item
	createdAt int64
	updatedAt int64
}

// New creates a character with an empty inventory
func New(id ids.CharacterID, name string) (*Character, error) {
	return LoadFromData(&Data{ID: id, Name: name})
}

// LoadFromData rebuilds a character, including its inventory, from data
func LoadFromData(data *Data) (*Character, error) {
	if data == nil {
		return nil, errors.InvalidArgument("character data cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if data.ID.IsZero() {
		vb.RequiredField("id")
	}
	errors.ValidateRequired("name", data.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &Character{
		id:        data.ID,
		name:      data.Name,
		playerID:  data.PlayerID,
		createdAt: data.CreatedAt,
		updatedAt: data.UpdatedAt,
	}

	for _, itemData := range data.Inventory {
		item, err := equipment.NewItem(itemData)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid inventory item for character %s", data.ID)
		}
		c.AddItemToInventory(item)
	}

	return c, nil
}

// ID returns the character ID
func (c *Character) ID() ids.CharacterID { return c.id }

// Name returns the character name
func (c *Character) Name() string { return c.name }

// PlayerID returns the owning player, if any
func (c *Character) PlayerID() string { return c.playerID }

// UpdatedAt returns the unix time of the last persisted update
func (c *Character) UpdatedAt() int64 { return c.updatedAt }

// AddItemToInventory puts item into the character's inventory.
// Adding an item that is already present is a no-op.
func (c *Character) AddItemToInventory(item *equipment.Item) {
	if item == nil || c.HasItem(item.ID()) {
		return
	}
	c.inventory = append(c.inventory, item)
}

// HasItem reports whether an item with the given ID is in the inventory
func (c *Character) HasItem(id ids.ItemID) bool {
	for _, item := range c.inventory {
		if item.ID() == id {
			return true
		}
	}
	return false
}

// Inventory returns the items the character holds, in insertion order.
// The returned slice is a copy; the items themselves are shared.
func (c *Character) Inventory() []*equipment.Item {
	out := make([]*equipment.Item, len(c.inventory))
	copy(out, c.inventory)
	return out
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.id.String() }

// GetType implements core.Entity
func (c *Character) GetType() string { return EntityTypeCharacter }

// ToData converts the character to its persisted form
func (c *Character) ToData() *Data {
	data := &Data{
		ID:        c.id,
		Name:      c.name,
		PlayerID:  c.playerID,
		CreatedAt: c.createdAt,
		UpdatedAt: c.updatedAt,
	}
	if len(c.inventory) > 0 {
		data.Inventory = make([]*equipment.ItemData, len(c.inventory))
		for i, item := range c.inventory {
			data.Inventory[i] = item.ToData()
		}
	}
	return data
}

var _ core.Entity = (*Character)(nil)
