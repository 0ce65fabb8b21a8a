package equipment

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// EntityTypeItem is the rpg-toolkit entity type reported by items
const EntityTypeItem = "item"

// ItemData is the persisted form of an Item
type ItemData struct {
	ID                 ids.ItemID          `json:"id"`
	PrototypeID        ids.ItemPrototypeID `json:"prototype_id"`
	CreatorCharacterID ids.CharacterID     `json:"creator_character_id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	ImageFilePath      string              `json:"image_file_path"`
	Type               ItemType            `json:"type"`
	Effects            []ItemEffect        `json:"effects,omitempty"`
	Price              int                 `json:"price"`
}

// Item is a concrete, uniquely identified instance of an ItemPrototype.
// Its values are copied from the prototype at creation and never re-read.
type Item struct {
	id                 ids.ItemID
	prototypeID        ids.ItemPrototypeID
	creatorCharacterID ids.CharacterID
	name               string
	description        string
	imageFilePath      string
	itemType           ItemType
	effects            []ItemEffect
	price              ItemPrice
}

// NewItem validates data and builds an item from it
func NewItem(data *ItemData) (*Item, error) {
	if data == nil {
		return nil, errors.InvalidArgument("item data cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if data.ID.IsZero() {
		vb.RequiredField("id")
	}
	if data.PrototypeID.IsZero() {
		vb.RequiredField("prototype_id")
	}
	if data.CreatorCharacterID.IsZero() {
		vb.RequiredField("creator_character_id")
	}
	errors.ValidateRequired("name", data.Name, vb)
	if !data.Type.IsValid() {
		vb.Fieldf("type", "unknown item type %q", data.Type)
	}
	price, err := PriceOfAmount(data.Price)
	if err != nil {
		vb.Field("price", errors.GetMessage(err))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &Item{
		id:                 data.ID,
		prototypeID:        data.PrototypeID,
		creatorCharacterID: data.CreatorCharacterID,
		name:               data.Name,
		description:        data.Description,
		imageFilePath:      data.ImageFilePath,
		itemType:           data.Type,
		effects:            copyEffects(data.Effects),
		price:              price,
	}, nil
}

// ID returns the item ID
func (i *Item) ID() ids.ItemID { return i.id }

// PrototypeID returns the ID of the prototype the item was created from
func (i *Item) PrototypeID() ids.ItemPrototypeID { return i.prototypeID }

// CreatorCharacterID returns the ID of the character that created the item
func (i *Item) CreatorCharacterID() ids.CharacterID { return i.creatorCharacterID }

// Name returns the item name
func (i *Item) Name() string { return i.name }

// Description returns the item description
func (i *Item) Description() string { return i.description }

// ImageFilePath returns the path of the item's image
func (i *Item) ImageFilePath() string { return i.imageFilePath }

// Type returns the item type
func (i *Item) Type() ItemType { return i.itemType }

// Effects returns a copy of the item's effects
func (i *Item) Effects() []ItemEffect { return copyEffects(i.effects) }

// Price returns the item price
func (i *Item) Price() ItemPrice { return i.price }

// GetID implements core.Entity
func (i *Item) GetID() string { return i.id.String() }

// GetType implements core.Entity
func (i *Item) GetType() string { return EntityTypeItem }

// ToData converts the item to its persisted form
func (i *Item) ToData() *ItemData {
	return &ItemData{
		ID:                 i.id,
		PrototypeID:        i.prototypeID,
		CreatorCharacterID: i.creatorCharacterID,
		Name:               i.name,
		Description:        i.description,
		ImageFilePath:      i.imageFilePath,
		Type:               i.itemType,
		Effects:            copyEffects(i.effects),
		Price:              i.price.Amount(),
	}
}

var _ core.Entity = (*Item)(nil)
