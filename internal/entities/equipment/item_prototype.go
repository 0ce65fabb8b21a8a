package equipment

import (
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// ItemPrototypeData is the persisted form of an ItemPrototype
type ItemPrototypeData struct {
	ID            ids.ItemPrototypeID `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	ImageFilePath string              `json:"image_file_path"`
	Type          ItemType            `json:"type"`
	Effects       []ItemEffect        `json:"effects,omitempty"`
	Price         int                 `json:"price"`
}

// ItemPrototype is a read-only template describing a class of item.
// Concrete items copy its values when they are created.
type ItemPrototype struct {
	id            ids.ItemPrototypeID
	name          string
	description   string
	imageFilePath string
	itemType      ItemType
	effects       []ItemEffect
	price         ItemPrice
}

// NewItemPrototype validates data and builds a prototype from it
func NewItemPrototype(data *ItemPrototypeData) (*ItemPrototype, error) {
	if data == nil {
		return nil, errors.InvalidArgument("item prototype data cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if data.ID.IsZero() {
		vb.RequiredField("id")
	}
	errors.ValidateRequired("name", data.Name, vb)
	if !data.Type.IsValid() {
		vb.Fieldf("type", "unknown item type %q", data.Type)
	}
	for _, effect := range data.Effects {
		if !effect.Type.IsValid() {
			vb.Fieldf("effects", "unknown effect type %q", effect.Type)
		}
	}
	price, err := PriceOfAmount(data.Price)
	if err != nil {
		vb.Field("price", errors.GetMessage(err))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &ItemPrototype{
		id:            data.ID,
		name:          data.Name,
		description:   data.Description,
		imageFilePath: data.ImageFilePath,
		itemType:      data.Type,
		effects:       copyEffects(data.Effects),
		price:         price,
	}, nil
}

// ID returns the prototype ID
func (p *ItemPrototype) ID() ids.ItemPrototypeID { return p.id }

// Name returns the prototype name
func (p *ItemPrototype) Name() string { return p.name }

// Description returns the prototype description
func (p *ItemPrototype) Description() string { return p.description }

// ImageFilePath returns the path of the prototype's image
func (p *ItemPrototype) ImageFilePath() string { return p.imageFilePath }

// Type returns the item type
func (p *ItemPrototype) Type() ItemType { return p.itemType }

// Effects returns a copy of the prototype's effects
func (p *ItemPrototype) Effects() []ItemEffect { return copyEffects(p.effects) }

// Price returns the prototype price
func (p *ItemPrototype) Price() ItemPrice { return p.price }

// ToData converts the prototype to its persisted form
func (p *ItemPrototype) ToData() *ItemPrototypeData {
	return &ItemPrototypeData{
		ID:            p.id,
		Name:          p.name,
		Description:   p.description,
		ImageFilePath: p.imageFilePath,
		Type:          p.itemType,
		Effects:       copyEffects(p.effects),
		Price:         p.price.Amount(),
	}
}
