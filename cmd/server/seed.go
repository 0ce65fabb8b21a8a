package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/internal/catalog"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/character"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/character"
	prototyperepo "github.com/KirkDiggler/rpg-equipment/internal/repositories/item_prototype"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

var (
	catalogFile   string
	characterID   string
	characterName string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the item prototype catalog into Redis",
	Long: `Load item prototypes from a YAML catalog into Redis. Existing prototypes
with the same ID are replaced. Optionally creates a character to create items for.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&catalogFile, "file", "configs/item_prototypes.yaml", "Catalog file")
	seedCmd.Flags().StringVar(&characterID, "character-id", "", "Also create a character with this ID")
	seedCmd.Flags().StringVar(&characterName, "character-name", "Adventurer", "Name of the seeded character")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := catalog.LoadFile(catalogFile)
	if err != nil {
		return err
	}

	redisClient, err := connectRedis(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	prototypeRepo, err := prototyperepo.NewRedis(&prototyperepo.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	syncer, err := catalog.NewSyncer(&catalog.SyncerConfig{Repo: prototypeRepo})
	if err != nil {
		return err
	}

	result, err := syncer.SyncCatalog(ctx, c)
	if err != nil {
		return err
	}
	fmt.Printf("Prototypes: %d created, %d updated\n", result.Created, result.Updated)

	if characterID == "" {
		return nil
	}

	id, err := ids.CharacterIDFromString(characterID)
	if err != nil {
		return err
	}
	newCharacter, err := character.New(id, characterName)
	if err != nil {
		return err
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}
	if _, err := characterRepo.Create(ctx, characterrepo.CreateInput{Character: newCharacter}); err != nil {
		if errors.IsAlreadyExists(err) {
			fmt.Printf("Character %s already exists\n", id)
			return nil
		}
		return err
	}
	fmt.Printf("Character %s (%s) created\n", id, characterName)

	return nil
}
