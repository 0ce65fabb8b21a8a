package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var listPrototypesCmd = &cobra.Command{
	Use:   "list-prototypes",
	Short: "List item prototypes",
	RunE:  runListPrototypes,
}

func runListPrototypes(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createItemClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListPrototypes(ctx, &structpb.Struct{})
	if err != nil {
		return fmt.Errorf("failed to list prototypes: %w", err)
	}

	return printResponse(resp)
}
