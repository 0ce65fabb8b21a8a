package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/catalog"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

const woodenClubYAML = `
version: 1
prototypes:
  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6
    name: Wooden club
    description: Club made from wood
    image_file_path: images\equipment\main_hand\1club.png
    type: main_hand
    price: 30
    effects:
      - type: damage
        value: 5
`

type CatalogTestSuite struct {
	suite.Suite
	repo   prototyperepo.Repository
	syncer *catalog.Syncer
	ctx    context.Context
}

func (s *CatalogTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	repo, err := prototyperepo.NewRedis(&prototyperepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	syncer, err := catalog.NewSyncer(&catalog.SyncerConfig{Repo: repo})
	s.Require().NoError(err)
	s.syncer = syncer
	s.ctx = context.Background()
}

func (s *CatalogTestSuite) TestLoadWoodenClub() {
	c, err := catalog.Load(strings.NewReader(woodenClubYAML))
	s.Require().NoError(err)

	prototypes, err := c.ItemPrototypes()
	s.Require().NoError(err)
	s.Require().Len(prototypes, 1)
	s.Equal(testutils.WoodenClubData(), prototypes[0].ToData())
}

func (s *CatalogTestSuite) TestLoadRejectsInvalidEntries() {
	testCases := []struct {
		name      string
		yaml      string
		wantField string
	}{
		{
			name:      "empty document",
			yaml:      "",
			wantField: "",
		},
		{
			name:      "no prototypes",
			yaml:      "version: 1\nprototypes: []\n",
			wantField: "prototypes",
		},
		{
			name:      "bad id",
			yaml:      "prototypes:\n  - id: nope\n    name: Stick\n    type: main_hand\n",
			wantField: "prototypes[0].id",
		},
		{
			name:      "missing name",
			yaml:      "prototypes:\n  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    type: main_hand\n",
			wantField: "prototypes[0].name",
		},
		{
			name:      "unknown type",
			yaml:      "prototypes:\n  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    name: Stick\n    type: tail\n",
			wantField: "prototypes[0].type",
		},
		{
			name:      "negative price",
			yaml:      "prototypes:\n  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    name: Stick\n    type: main_hand\n    price: -1\n",
			wantField: "prototypes[0].price",
		},
		{
			name: "unknown effect",
			yaml: "prototypes:\n  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    name: Stick\n    type: main_hand\n" +
				"    effects:\n      - type: luck\n        value: 1\n",
			wantField: "prototypes[0].effects[0].type",
		},
		{
			name: "duplicate id",
			yaml: "prototypes:\n" +
				"  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    name: Stick\n    type: main_hand\n" +
				"  - id: 598D1570-E0E3-40D1-979B-64E48626F6F6\n    name: Club\n    type: main_hand\n",
			wantField: "prototypes[1].id",
		},
		{
			name:      "unknown field",
			yaml:      "prototypes:\n  - id: 598d1570-e0e3-40d1-979b-64e48626f6f6\n    name: Stick\n    type: main_hand\n    weight: 3\n",
			wantField: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.Load(strings.NewReader(tc.yaml))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
			if tc.wantField == "" {
				return
			}
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok, "expected validation_errors meta, got %v", err)
			s.Contains(fields, tc.wantField)
		})
	}
}

func (s *CatalogTestSuite) TestLoadFileShippedCatalog() {
	c, err := catalog.LoadFile("../../configs/item_prototypes.yaml")
	s.Require().NoError(err)

	prototypes, err := c.ItemPrototypes()
	s.Require().NoError(err)
	s.Require().NotEmpty(prototypes)

	found := false
	for _, p := range prototypes {
		if p.ID().String() == testutils.WoodenClubPrototypeID {
			found = true
			s.Equal(testutils.WoodenClubData(), p.ToData())
		}
	}
	s.True(found, "wooden club missing from shipped catalog")
}

func (s *CatalogTestSuite) TestLoadFileMissing() {
	_, err := catalog.LoadFile("does/not/exist.yaml")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestSyncCatalog() {
	c, err := catalog.Load(strings.NewReader(woodenClubYAML))
	s.Require().NoError(err)

	result, err := s.syncer.SyncCatalog(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(1, result.Created)
	s.Equal(0, result.Updated)

	out, err := s.repo.Get(s.ctx, prototyperepo.GetInput{ID: ids.MustItemPrototypeID(testutils.WoodenClubPrototypeID)})
	s.Require().NoError(err)
	s.Equal("Wooden club", out.ItemPrototype.Name())
	s.Equal(equipment.ItemTypeMainHand, out.ItemPrototype.Type())

	result, err = s.syncer.SyncCatalog(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(0, result.Created)
	s.Equal(1, result.Updated)
}

func (s *CatalogTestSuite) TestNewSyncerRequiresRepo() {
	_, err := catalog.NewSyncer(&catalog.SyncerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
