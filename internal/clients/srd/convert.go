package srd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// prototypeNamespace seeds the name based UUIDs of imported prototypes so a
// re-import overwrites instead of duplicating
var prototypeNamespace = uuid.MustParse("6f1c2d3e-8a4b-5c6d-9e0f-a1b2c3d4e5f6")

// dicePattern matches SRD damage dice such as "1d8" or "2d6+1"
var dicePattern = regexp.MustCompile(`^(\d+)d(\d+)(?:\s*([+-])\s*(\d+))?$`)

// copper value of each SRD coin
var coinValue = map[string]int{
	"cp": 1,
	"sp": 10,
	"ep": 50,
	"gp": 100,
	"pp": 1000,
}

// PrototypeID returns the prototype ID an SRD equipment key imports as
func PrototypeID(key string) ids.ItemPrototypeID {
	return ids.MustItemPrototypeID(uuid.NewSHA1(prototypeNamespace, []byte("srd:"+key)).String())
}

// toItemPrototype returns nil, nil for equipment that has no item type
func toItemPrototype(item dnd5e.EquipmentInterface) (*equipment.ItemPrototype, error) {
	switch eq := item.(type) {
	case *entities.Weapon:
		return weaponPrototype(eq)
	case *entities.Armor:
		return armorPrototype(eq)
	default:
		return nil, nil
	}
}

func weaponPrototype(w *entities.Weapon) (*equipment.ItemPrototype, error) {
	itemType := equipment.ItemTypeMainHand
	for _, prop := range w.Properties {
		if prop != nil && strings.EqualFold(prop.Name, "Two-Handed") {
			itemType = equipment.ItemTypeTwoHand
		}
	}

	var effects []equipment.ItemEffect
	description := fmt.Sprintf("%s %s weapon", w.WeaponCategory, w.WeaponRange)
	if w.Damage != nil {
		damage, err := averageDamage(w.Damage.DamageDice)
		if err != nil {
			return nil, err
		}
		effects = append(effects, equipment.Damage(damage))

		description += ", " + w.Damage.DamageDice
		if w.Damage.DamageType != nil {
			description += " " + strings.ToLower(w.Damage.DamageType.Name)
		}
	}

	return equipment.NewItemPrototype(&equipment.ItemPrototypeData{
		ID:            PrototypeID(w.Key),
		Name:          w.Name,
		Description:   description,
		ImageFilePath: imagePath(itemType, w.Key),
		Type:          itemType,
		Effects:       effects,
		Price:         priceOf(w.Cost),
	})
}

func armorPrototype(a *entities.Armor) (*equipment.ItemPrototype, error) {
	itemType := equipment.ItemTypeArmor
	if strings.EqualFold(a.ArmorCategory, "Shield") {
		itemType = equipment.ItemTypeOffHand
	}

	var effects []equipment.ItemEffect
	description := a.ArmorCategory + " armor"
	if itemType == equipment.ItemTypeOffHand {
		description = "Shield"
	}
	if a.ArmorClass != nil {
		effects = append(effects, equipment.Armor(a.ArmorClass.Base))
		description += fmt.Sprintf(", AC %d", a.ArmorClass.Base)
	}

	return equipment.NewItemPrototype(&equipment.ItemPrototypeData{
		ID:            PrototypeID(a.Key),
		Name:          a.Name,
		Description:   description,
		ImageFilePath: imagePath(itemType, a.Key),
		Type:          itemType,
		Effects:       effects,
		Price:         priceOf(a.Cost),
	})
}

// averageDamage rounds the expected roll of a dice expression up
func averageDamage(dice string) (int, error) {
	m := dicePattern.FindStringSubmatch(strings.TrimSpace(dice))
	if m == nil {
		return 0, errors.InvalidArgumentf("unsupported damage dice %q", dice)
	}

	count, _ := strconv.Atoi(m[1])
	sides, _ := strconv.Atoi(m[2])
	if count == 0 || sides == 0 {
		return 0, errors.InvalidArgumentf("unsupported damage dice %q", dice)
	}

	// twice the average, to stay in integers
	total := count * (sides + 1)
	if m[3] != "" {
		mod, _ := strconv.Atoi(m[4])
		if m[3] == "-" {
			mod = -mod
		}
		total += 2 * mod
	}
	if total < 0 {
		total = 0
	}
	return (total + 1) / 2, nil
}

func priceOf(cost *entities.Cost) int {
	if cost == nil {
		return 0
	}
	value, ok := coinValue[strings.ToLower(cost.Unit)]
	if !ok {
		return 0
	}
	return cost.Quantity * value
}

func imagePath(itemType equipment.ItemType, key string) string {
	return fmt.Sprintf("images/equipment/%s/%s.png", itemType, key)
}
