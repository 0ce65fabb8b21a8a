package srd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-equipment/internal/clients/srd"
	srdmock "github.com/KirkDiggler/rpg-equipment/internal/clients/srd/mock"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	apperrors "github.com/KirkDiggler/rpg-equipment/internal/errors"
)

type ImporterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockAPI  *srdmock.MockAPI
	importer srd.Importer
	ctx      context.Context
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAPI = srdmock.NewMockAPI(s.ctrl)
	s.ctx = context.Background()

	importer, err := srd.New(&srd.Config{API: s.mockAPI, Concurrency: 2})
	s.Require().NoError(err)
	s.importer = importer
}

func (s *ImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ImporterTestSuite) TestImportSimpleWeapons() {
	s.mockAPI.EXPECT().GetEquipmentCategory("simple-weapons").Return(&entities.EquipmentCategory{
		Index: "simple-weapons",
		Name:  "Simple Weapons",
		Equipment: []*entities.ReferenceItem{
			{Key: "club", Name: "Club"},
			{Key: "greatclub", Name: "Greatclub"},
			{Key: "torch", Name: "Torch"},
		},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("club").Return(&entities.Weapon{
		Key:            "club",
		Name:           "Club",
		WeaponCategory: "Simple",
		WeaponRange:    "Melee",
		Cost:           &entities.Cost{Quantity: 1, Unit: "sp"},
		Damage:         &entities.Damage{DamageDice: "1d4", DamageType: &entities.ReferenceItem{Name: "Bludgeoning"}},
		Properties:     []*entities.ReferenceItem{{Name: "Light"}},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("greatclub").Return(&entities.Weapon{
		Key:            "greatclub",
		Name:           "Greatclub",
		WeaponCategory: "Simple",
		WeaponRange:    "Melee",
		Cost:           &entities.Cost{Quantity: 2, Unit: "sp"},
		Damage:         &entities.Damage{DamageDice: "1d8", DamageType: &entities.ReferenceItem{Name: "Bludgeoning"}},
		Properties:     []*entities.ReferenceItem{{Name: "Two-Handed"}},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("torch").Return(&entities.Equipment{
		Key:  "torch",
		Name: "Torch",
		Cost: &entities.Cost{Quantity: 1, Unit: "cp"},
	}, nil)

	prototypes, err := s.importer.ImportCategory(s.ctx, "simple-weapons")
	s.Require().NoError(err)
	s.Require().Len(prototypes, 2)

	club := prototypes[0]
	s.Equal(srd.PrototypeID("club"), club.ID())
	s.Equal("Club", club.Name())
	s.Equal("Simple Melee weapon, 1d4 bludgeoning", club.Description())
	s.Equal(equipment.ItemTypeMainHand, club.Type())
	s.Equal([]equipment.ItemEffect{equipment.Damage(3)}, club.Effects())
	s.Equal(10, club.Price().Amount())
	s.Equal("images/equipment/main_hand/club.png", club.ImageFilePath())

	greatclub := prototypes[1]
	s.Equal(equipment.ItemTypeTwoHand, greatclub.Type())
	s.Equal([]equipment.ItemEffect{equipment.Damage(5)}, greatclub.Effects())
	s.Equal(20, greatclub.Price().Amount())
}

func (s *ImporterTestSuite) TestImportArmor() {
	s.mockAPI.EXPECT().GetEquipmentCategory("armor").Return(&entities.EquipmentCategory{
		Equipment: []*entities.ReferenceItem{
			{Key: "leather-armor", Name: "Leather Armor"},
			{Key: "shield", Name: "Shield"},
		},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("leather-armor").Return(&entities.Armor{
		Key:           "leather-armor",
		Name:          "Leather Armor",
		ArmorCategory: "Light",
		Cost:          &entities.Cost{Quantity: 10, Unit: "gp"},
		ArmorClass:    &entities.ArmorClass{Base: 11, DexBonus: true},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("shield").Return(&entities.Armor{
		Key:           "shield",
		Name:          "Shield",
		ArmorCategory: "Shield",
		Cost:          &entities.Cost{Quantity: 10, Unit: "gp"},
		ArmorClass:    &entities.ArmorClass{Base: 2},
	}, nil)

	prototypes, err := s.importer.ImportCategory(s.ctx, "armor")
	s.Require().NoError(err)
	s.Require().Len(prototypes, 2)

	s.Equal(equipment.ItemTypeArmor, prototypes[0].Type())
	s.Equal("Light armor, AC 11", prototypes[0].Description())
	s.Equal([]equipment.ItemEffect{equipment.Armor(11)}, prototypes[0].Effects())
	s.Equal(1000, prototypes[0].Price().Amount())

	s.Equal(equipment.ItemTypeOffHand, prototypes[1].Type())
	s.Equal([]equipment.ItemEffect{equipment.Armor(2)}, prototypes[1].Effects())
}

func (s *ImporterTestSuite) TestImportCategoryFailure() {
	s.mockAPI.EXPECT().GetEquipmentCategory("nope").Return(nil, errors.New("404"))

	_, err := s.importer.ImportCategory(s.ctx, "nope")
	s.Require().Error(err)
	s.Equal(apperrors.CodeUnavailable, apperrors.GetCode(err))
}

func (s *ImporterTestSuite) TestImportEquipmentFailure() {
	s.mockAPI.EXPECT().GetEquipmentCategory("simple-weapons").Return(&entities.EquipmentCategory{
		Equipment: []*entities.ReferenceItem{{Key: "club", Name: "Club"}},
	}, nil)
	s.mockAPI.EXPECT().GetEquipment("club").Return(nil, errors.New("timeout"))

	_, err := s.importer.ImportCategory(s.ctx, "simple-weapons")
	s.Require().Error(err)
	s.Equal(apperrors.CodeUnavailable, apperrors.GetCode(err))
}

func (s *ImporterTestSuite) TestImportRequiresCategory() {
	_, err := s.importer.ImportCategory(s.ctx, "")
	s.Require().Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ImporterTestSuite) TestPrototypeIDIsStable() {
	s.Equal(srd.PrototypeID("club"), srd.PrototypeID("club"))
	s.NotEqual(srd.PrototypeID("club"), srd.PrototypeID("greatclub"))
}

func TestImporterTestSuite(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}
