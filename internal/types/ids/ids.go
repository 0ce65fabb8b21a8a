// Package ids provides the identifier types shared by the character and
// equipment modules. Each identifier kind is its own type so an ItemID can
// never be passed where a CharacterID is expected.
package ids

import (
	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

func parse(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, errors.InvalidArgumentf("%s cannot be empty", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.InvalidArgumentf("invalid %s %q", kind, s).WithMeta("value", s)
	}
	return u, nil
}

// ItemID identifies a concrete item instance
type ItemID struct {
	value uuid.UUID
}

// ItemIDFromString parses the string form of an item ID
func ItemIDFromString(s string) (ItemID, error) {
	u, err := parse("item ID", s)
	if err != nil {
		return ItemID{}, err
	}
	return ItemID{value: u}, nil
}

// MustItemID parses s and panics if it is not a valid item ID.
// Intended for fixtures and constants.
func MustItemID(s string) ItemID {
	id, err := ItemIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ItemID) String() string {
	return id.value.String()
}

// IsZero reports whether the ID was never assigned
func (id ItemID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler
func (id ItemID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ItemID) UnmarshalText(b []byte) error {
	parsed, err := ItemIDFromString(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ItemPrototypeID identifies an item prototype
type ItemPrototypeID struct {
	value uuid.UUID
}

// ItemPrototypeIDFromString parses the string form of a prototype ID
func ItemPrototypeIDFromString(s string) (ItemPrototypeID, error) {
	u, err := parse("item prototype ID", s)
	if err != nil {
		return ItemPrototypeID{}, err
	}
	return ItemPrototypeID{value: u}, nil
}

// MustItemPrototypeID parses s and panics if it is not a valid prototype ID
func MustItemPrototypeID(s string) ItemPrototypeID {
	id, err := ItemPrototypeIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ItemPrototypeID) String() string {
	return id.value.String()
}

// IsZero reports whether the ID was never assigned
func (id ItemPrototypeID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler
func (id ItemPrototypeID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ItemPrototypeID) UnmarshalText(b []byte) error {
	parsed, err := ItemPrototypeIDFromString(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// CharacterID identifies a character
type CharacterID struct {
	value uuid.UUID
}

// CharacterIDFromString parses the string form of a character ID
func CharacterIDFromString(s string) (CharacterID, error) {
	u, err := parse("character ID", s)
	if err != nil {
		return CharacterID{}, err
	}
	return CharacterID{value: u}, nil
}

// MustCharacterID parses s and panics if it is not a valid character ID
func MustCharacterID(s string) CharacterID {
	id, err := CharacterIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id CharacterID) String() string {
	return id.value.String()
}

// IsZero reports whether the ID was never assigned
func (id CharacterID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implements encoding.TextMarshaler
func (id CharacterID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *CharacterID) UnmarshalText(b []byte) error {
	parsed, err := CharacterIDFromString(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
