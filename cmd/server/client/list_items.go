package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var listItemsCmd = &cobra.Command{
	Use:   "list-items [character-id]",
	Short: "List the items a character has created",
	Args:  cobra.ExactArgs(1),
	RunE:  runListItems,
}

func runListItems(_ *cobra.Command, args []string) error {
	client, cleanup, err := createItemClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]interface{}{"character_id": args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	log.Printf("Listing items created by %s from %s...", args[0], serverAddr)

	resp, err := client.ListCreatedItems(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	return printResponse(resp)
}
