package itemprototype_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo prototyperepo.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := prototyperepo.NewRedis(&prototyperepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := prototyperepo.NewRedis(&prototyperepo.RedisConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet() {
	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, prototyperepo.GetInput{
			ID: ids.MustItemPrototypeID(testutils.WoodenClubPrototypeID),
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Equal(testutils.WoodenClubPrototypeID, errors.GetMeta(err)["item_prototype_id"])
	})

	s.Run("returns the saved prototype", func() {
		prototype := testutils.CreateWoodenClubPrototype(s.T())
		_, err := s.repo.Save(s.ctx, prototyperepo.SaveInput{ItemPrototype: prototype})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, prototyperepo.GetInput{ID: prototype.ID()})
		s.Require().NoError(err)
		s.Equal(prototype.ToData(), out.ItemPrototype.ToData())
	})
}

func (s *RedisRepositoryTestSuite) TestSave() {
	prototype := testutils.CreateWoodenClubPrototype(s.T())

	s.Run("first save creates", func() {
		out, err := s.repo.Save(s.ctx, prototyperepo.SaveInput{ItemPrototype: prototype})
		s.Require().NoError(err)
		s.True(out.Created)
		s.True(s.mr.Exists(prototyperepo.GetKey(prototype.ID())))
	})

	s.Run("second save replaces", func() {
		data := testutils.WoodenClubData()
		data.Price = 45
		updated, err := equipment.NewItemPrototype(data)
		s.Require().NoError(err)

		out, err := s.repo.Save(s.ctx, prototyperepo.SaveInput{ItemPrototype: updated})
		s.Require().NoError(err)
		s.False(out.Created)

		got, err := s.repo.Get(s.ctx, prototyperepo.GetInput{ID: prototype.ID()})
		s.Require().NoError(err)
		s.Equal(45, got.ItemPrototype.Price().Amount())
	})

	s.Run("nil prototype", func() {
		_, err := s.repo.Save(s.ctx, prototyperepo.SaveInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestList() {
	s.Run("empty", func() {
		out, err := s.repo.List(s.ctx, prototyperepo.ListInput{})
		s.Require().NoError(err)
		s.Empty(out.ItemPrototypes)
	})

	s.Run("ordered by name", func() {
		shield, err := equipment.NewItemPrototype(&equipment.ItemPrototypeData{
			ID:      ids.MustItemPrototypeID("0b7c1e5a-3f6d-4a43-9d55-2a1f0c8e9b01"),
			Name:    "Buckler",
			Type:    equipment.ItemTypeOffHand,
			Effects: []equipment.ItemEffect{equipment.Armor(2)},
			Price:   15,
		})
		s.Require().NoError(err)

		for _, p := range []*equipment.ItemPrototype{testutils.CreateWoodenClubPrototype(s.T()), shield} {
			_, err := s.repo.Save(s.ctx, prototyperepo.SaveInput{ItemPrototype: p})
			s.Require().NoError(err)
		}

		out, err := s.repo.List(s.ctx, prototyperepo.ListInput{})
		s.Require().NoError(err)
		s.Require().Len(out.ItemPrototypes, 2)
		s.Equal("Buckler", out.ItemPrototypes[0].Name())
		s.Equal("Wooden club", out.ItemPrototypes[1].Name())
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
