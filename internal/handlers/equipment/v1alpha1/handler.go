// Package v1alpha1 handles the equipment grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/services/item"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ItemService item.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ItemService == nil {
		return errors.InvalidArgument("item service is required")
	}
	return nil
}

// Handler implements ItemServiceServer
type Handler struct {
	itemService item.Service
}

var _ ItemServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{itemService: cfg.ItemService}, nil
}

// CreateItem creates an item from a prototype for a character
func (h *Handler) CreateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	rawPrototypeID, err := stringField(req, fieldItemPrototypeID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	rawCharacterID, err := stringField(req, fieldCreatorCharacterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	prototypeID, err := ids.ItemPrototypeIDFromString(rawPrototypeID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	characterID, err := ids.CharacterIDFromString(rawCharacterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.itemService.Create(ctx, &item.CreateItemCommand{
		ItemPrototypeID:    prototypeID,
		CreatorCharacterID: characterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]interface{}{fieldItem: itemToMap(out.Item)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// GetItem returns one item
func (h *Handler) GetItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := stringField(req, fieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemID, err := ids.ItemIDFromString(raw)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.itemService.Get(ctx, &item.GetItemInput{ItemID: itemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]interface{}{fieldItem: itemToMap(out.Item)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ListCreatedItems returns the items a character created
func (h *Handler) ListCreatedItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	raw, err := stringField(req, fieldCharacterID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	characterID, err := ids.CharacterIDFromString(raw)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.itemService.ListCreatedItems(ctx, &item.ListCreatedItemsInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]interface{}, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, itemToMap(it))
	}

	resp, err := toStruct(map[string]interface{}{fieldItems: items})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ListPrototypes returns every prototype items can be created from
func (h *Handler) ListPrototypes(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.itemService.ListPrototypes(ctx, &item.ListPrototypesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	prototypes := make([]interface{}, 0, len(out.ItemPrototypes))
	for _, p := range out.ItemPrototypes {
		prototypes = append(prototypes, prototypeToMap(p))
	}

	resp, err := toStruct(map[string]interface{}{fieldPrototypes: prototypes})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}
