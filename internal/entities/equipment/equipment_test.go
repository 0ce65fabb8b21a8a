package equipment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

const (
	testPrototypeID = "598d1570-e0e3-40d1-979b-64e48626f6f6"
	testItemID      = "598d1570-e0e3-40d1-979b-64e48626f777"
	testCharacterID = "65976e46-d2eb-4373-ba69-b7c9ea81b56f"
)

type EquipmentTestSuite struct {
	suite.Suite
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) woodenClubData() *equipment.ItemPrototypeData {
	return &equipment.ItemPrototypeData{
		ID:            ids.MustItemPrototypeID(testPrototypeID),
		Name:          "Wooden club",
		Description:   "Club made from wood",
		ImageFilePath: "images/equipment/main_hand/1club.png",
		Type:          equipment.ItemTypeMainHand,
		Effects:       []equipment.ItemEffect{equipment.Damage(5)},
		Price:         30,
	}
}

func (s *EquipmentTestSuite) TestNewItemPrototype() {
	testCases := []struct {
		name    string
		mutate  func(d *equipment.ItemPrototypeData)
		wantErr string
	}{
		{name: "valid prototype", mutate: func(*equipment.ItemPrototypeData) {}},
		{
			name:    "missing name",
			mutate:  func(d *equipment.ItemPrototypeData) { d.Name = "" },
			wantErr: "name: is required",
		},
		{
			name:    "missing id",
			mutate:  func(d *equipment.ItemPrototypeData) { d.ID = ids.ItemPrototypeID{} },
			wantErr: "id: is required",
		},
		{
			name:    "unknown type",
			mutate:  func(d *equipment.ItemPrototypeData) { d.Type = "tail" },
			wantErr: "unknown item type",
		},
		{
			name:    "negative price",
			mutate:  func(d *equipment.ItemPrototypeData) { d.Price = -1 },
			wantErr: "price cannot be negative",
		},
		{
			name: "unknown effect",
			mutate: func(d *equipment.ItemPrototypeData) {
				d.Effects = append(d.Effects, equipment.ItemEffect{Type: "luck", Value: 1})
			},
			wantErr: "unknown effect type",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			data := s.woodenClubData()
			tc.mutate(data)

			prototype, err := equipment.NewItemPrototype(data)
			if tc.wantErr != "" {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Contains(err.Error(), tc.wantErr)
				s.Nil(prototype)
				return
			}

			s.Require().NoError(err)
			s.Equal("Wooden club", prototype.Name())
			s.Equal(equipment.ItemTypeMainHand, prototype.Type())
			s.Equal(30, prototype.Price().Amount())
			s.Equal([]equipment.ItemEffect{equipment.Damage(5)}, prototype.Effects())
		})
	}
}

func (s *EquipmentTestSuite) TestPrototypeIsNotMutatedThroughEffects() {
	data := s.woodenClubData()
	prototype, err := equipment.NewItemPrototype(data)
	s.Require().NoError(err)

	data.Effects[0] = equipment.Damage(99)
	effects := prototype.Effects()
	effects[0] = equipment.Damage(42)

	s.Equal(5, prototype.Effects()[0].Value)
}

func (s *EquipmentTestSuite) TestPrototypeToDataRoundTrip() {
	prototype, err := equipment.NewItemPrototype(s.woodenClubData())
	s.Require().NoError(err)

	raw, err := json.Marshal(prototype.ToData())
	s.Require().NoError(err)

	var data equipment.ItemPrototypeData
	s.Require().NoError(json.Unmarshal(raw, &data))

	loaded, err := equipment.NewItemPrototype(&data)
	s.Require().NoError(err)
	s.Equal(prototype, loaded)
}

func (s *EquipmentTestSuite) TestNewItem() {
	item, err := equipment.NewItem(&equipment.ItemData{
		ID:                 ids.MustItemID(testItemID),
		PrototypeID:        ids.MustItemPrototypeID(testPrototypeID),
		CreatorCharacterID: ids.MustCharacterID(testCharacterID),
		Name:               "Wooden club",
		Type:               equipment.ItemTypeMainHand,
		Effects:            []equipment.ItemEffect{equipment.Damage(5)},
		Price:              30,
	})
	s.Require().NoError(err)

	s.Equal(testItemID, item.GetID())
	s.Equal(equipment.EntityTypeItem, item.GetType())
	s.Equal(ids.MustCharacterID(testCharacterID), item.CreatorCharacterID())
	s.Equal(item.ToData().ID, item.ID())
}

func (s *EquipmentTestSuite) TestNewItemRequiresReferences() {
	_, err := equipment.NewItem(&equipment.ItemData{
		ID:   ids.MustItemID(testItemID),
		Name: "Orphan",
		Type: equipment.ItemTypeRing,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "prototype_id: is required")
	s.Contains(err.Error(), "creator_character_id: is required")

	_, err = equipment.NewItem(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EquipmentTestSuite) TestItemTypes() {
	for _, t := range equipment.AllItemTypes() {
		parsed, ok := equipment.ItemTypeFromString(t.String())
		s.True(ok)
		s.Equal(t, parsed)
	}

	_, ok := equipment.ItemTypeFromString("tail")
	s.False(ok)
	s.False(equipment.ItemTypeConsumable.IsEquippable())
	s.True(equipment.ItemTypeMainHand.IsEquippable())
}

func (s *EquipmentTestSuite) TestEffectString() {
	s.Equal("damage: 5", equipment.Damage(5).String())
	s.Equal("armor: 2", equipment.Armor(2).String())
}

func (s *EquipmentTestSuite) TestPrice() {
	_, err := equipment.PriceOfAmount(-5)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, equipment.MustPrice(0).Amount())
	s.Panics(func() { equipment.MustPrice(-1) })
}
