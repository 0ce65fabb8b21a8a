package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var getItemCmd = &cobra.Command{
	Use:   "get-item [item-id]",
	Short: "Get an item by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetItem,
}

func runGetItem(_ *cobra.Command, args []string) error {
	client, cleanup, err := createItemClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]interface{}{"item_id": args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.GetItem(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	return printResponse(resp)
}
