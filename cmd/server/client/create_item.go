package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	prototypeID        string
	creatorCharacterID string
)

var createItemCmd = &cobra.Command{
	Use:   "create-item",
	Short: "Create an item from a prototype",
	Long:  `Create a new item from an item prototype and add it to the creating character's inventory.`,
	RunE:  runCreateItem,
}

func init() {
	createItemCmd.Flags().StringVar(&prototypeID, "prototype", "", "Item prototype ID (required)")
	createItemCmd.Flags().StringVar(&creatorCharacterID, "character", "", "Creator character ID (required)")
	_ = createItemCmd.MarkFlagRequired("prototype")
	_ = createItemCmd.MarkFlagRequired("character")
}

func runCreateItem(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createItemClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]interface{}{
		"item_prototype_id":    prototypeID,
		"creator_character_id": creatorCharacterID,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	log.Printf("Creating item from prototype %s for character %s...", prototypeID, creatorCharacterID)

	resp, err := client.CreateItem(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return printResponse(resp)
}
