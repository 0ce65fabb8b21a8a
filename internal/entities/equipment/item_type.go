// Package equipment contains the item prototype and item entities
package equipment

// ItemType is the equipment slot family an item belongs to
type ItemType string

// Item types
const (
	ItemTypeMainHand   ItemType = "main_hand"
	ItemTypeOffHand    ItemType = "off_hand"
	ItemTypeTwoHand    ItemType = "two_hand"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeHelmet     ItemType = "helmet"
	ItemTypeGloves     ItemType = "gloves"
	ItemTypeBoots      ItemType = "boots"
	ItemTypeAmulet     ItemType = "amulet"
	ItemTypeRing       ItemType = "ring"
	ItemTypeBelt       ItemType = "belt"
	ItemTypeConsumable ItemType = "consumable"
)

// String returns the string representation of the item type
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the item type is one of the known types
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMainHand, ItemTypeOffHand, ItemTypeTwoHand, ItemTypeArmor,
		ItemTypeHelmet, ItemTypeGloves, ItemTypeBoots, ItemTypeAmulet,
		ItemTypeRing, ItemTypeBelt, ItemTypeConsumable:
		return true
	default:
		return false
	}
}

// IsEquippable reports whether the type occupies an equipment slot
func (t ItemType) IsEquippable() bool {
	return t.IsValid() && t != ItemTypeConsumable
}

// AllItemTypes returns every valid item type
func AllItemTypes() []ItemType {
	return []ItemType{
		ItemTypeMainHand,
		ItemTypeOffHand,
		ItemTypeTwoHand,
		ItemTypeArmor,
		ItemTypeHelmet,
		ItemTypeGloves,
		ItemTypeBoots,
		ItemTypeAmulet,
		ItemTypeRing,
		ItemTypeBelt,
		ItemTypeConsumable,
	}
}

// ItemTypeFromString converts a string to an ItemType
// Returns the type and true if valid, empty type and false if invalid
func ItemTypeFromString(s string) (ItemType, bool) {
	t := ItemType(s)
	if t.IsValid() {
		return t, true
	}
	return "", false
}
