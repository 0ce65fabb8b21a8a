package equipment

import "fmt"

// EffectType names the stat an item effect modifies
type EffectType string

// Effect types
const (
	EffectTypeDamage   EffectType = "damage"
	EffectTypeArmor    EffectType = "armor"
	EffectTypeHealth   EffectType = "health"
	EffectTypeMana     EffectType = "mana"
	EffectTypeStrength EffectType = "strength"
	EffectTypeAgility  EffectType = "agility"
)

// IsValid checks if the effect type is known
func (t EffectType) IsValid() bool {
	switch t {
	case EffectTypeDamage, EffectTypeArmor, EffectTypeHealth,
		EffectTypeMana, EffectTypeStrength, EffectTypeAgility:
		return true
	default:
		return false
	}
}

// ItemEffect is a single stat modifier granted by an item, e.g. "damage: 5"
type ItemEffect struct {
	Type  EffectType `json:"type"`
	Value int        `json:"value"`
}

// Damage creates a damage effect
func Damage(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeDamage, Value: value}
}

// Armor creates an armor effect
func Armor(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeArmor, Value: value}
}

// Health creates a health effect
func Health(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeHealth, Value: value}
}

// Mana creates a mana effect
func Mana(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeMana, Value: value}
}

// Strength creates a strength effect
func Strength(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeStrength, Value: value}
}

// Agility creates an agility effect
func Agility(value int) ItemEffect {
	return ItemEffect{Type: EffectTypeAgility, Value: value}
}

func (e ItemEffect) String() string {
	return fmt.Sprintf("%s: %d", e.Type, e.Value)
}

func copyEffects(effects []ItemEffect) []ItemEffect {
	if effects == nil {
		return nil
	}
	out := make([]ItemEffect, len(effects))
	copy(out, effects)
	return out
}
