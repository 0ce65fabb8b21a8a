package character_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
	characterrepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/character"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  characterrepo.Repository
	ctx   context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *characterrepo.RedisConfig
	}{
		{name: "nil config", config: nil},
		{name: "missing client", config: &characterrepo.RedisConfig{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := characterrepo.NewRedis(tc.config)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("stores the character under its key", func() {
		out, err := s.repo.Create(s.ctx, characterrepo.CreateInput{
			Character: testutils.CreateTestCharacter(s.T()),
		})
		s.Require().NoError(err)
		s.Equal(testutils.TestCharacterName, out.Character.Name())
		s.Equal(s.clock.At.Unix(), out.Character.UpdatedAt())

		raw, err := s.mr.Get("character:" + testutils.TestCharacterID)
		s.Require().NoError(err)

		var stored map[string]interface{}
		s.Require().NoError(json.Unmarshal([]byte(raw), &stored))
		s.Equal(testutils.TestCharacterID, stored["id"])
		s.Equal(testutils.TestCharacterName, stored["name"])
	})

	s.Run("rejects a duplicate id", func() {
		_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{
			Character: testutils.CreateTestCharacter(s.T()),
		})
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("rejects a nil character", func() {
		_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, characterrepo.GetInput{
			ID: ids.MustCharacterID(testutils.TestCharacterID),
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.Equal(testutils.TestCharacterID, errors.GetMeta(err)["character_id"])
	})

	s.Run("returns the inventory", func() {
		c := testutils.CreateTestCharacter(s.T())
		c.AddItemToInventory(testutils.CreateWoodenClubItem(s.T(), testutils.WoodenClubItemID))
		_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: c})
		s.Require().NoError(err)

		out, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: c.ID()})
		s.Require().NoError(err)
		s.Equal(c.ID(), out.Character.ID())
		s.Require().Len(out.Character.Inventory(), 1)

		item := out.Character.Inventory()[0]
		s.Equal(testutils.WoodenClubItemID, item.ID().String())
		s.Equal("Wooden club", item.Name())
		s.Equal(30, item.Price().Amount())
	})

	s.Run("corrupt payload", func() {
		id := ids.MustCharacterID("1a2b3c4d-0000-4000-8000-000000000001")
		s.Require().NoError(s.mr.Set(characterrepo.GetKey(id), "{not json"))

		_, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: id})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	s.Run("missing character", func() {
		_, err := s.repo.Update(s.ctx, characterrepo.UpdateInput{
			Character: testutils.CreateTestCharacter(s.T()),
		})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.False(s.mr.Exists(characterrepo.GetKey(ids.MustCharacterID(testutils.TestCharacterID))))
	})

	s.Run("persists the new inventory", func() {
		c := testutils.CreateTestCharacter(s.T())
		_, err := s.repo.Create(s.ctx, characterrepo.CreateInput{Character: c})
		s.Require().NoError(err)

		s.clock.At = s.clock.At.Add(time.Hour)
		c.AddItemToInventory(testutils.CreateWoodenClubItem(s.T(), testutils.WoodenClubItemID))

		out, err := s.repo.Update(s.ctx, characterrepo.UpdateInput{Character: c})
		s.Require().NoError(err)
		s.Equal(s.clock.At.Unix(), out.Character.UpdatedAt())

		got, err := s.repo.Get(s.ctx, characterrepo.GetInput{ID: c.ID()})
		s.Require().NoError(err)
		s.True(got.Character.HasItem(ids.MustItemID(testutils.WoodenClubItemID)))
	})

	s.Run("rejects a nil character", func() {
		_, err := s.repo.Update(s.ctx, characterrepo.UpdateInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
