package v1alpha1

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
)

// Request and response field names
const (
	fieldItemPrototypeID    = "item_prototype_id"
	fieldCreatorCharacterID = "creator_character_id"
	fieldCharacterID        = "character_id"
	fieldItemID             = "item_id"
	fieldItem               = "item"
	fieldItems              = "items"
	fieldPrototypes         = "prototypes"
)

// stringField reads a string field, reporting missing or non-string values
func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok || s.StringValue == "" {
		return "", errors.InvalidArgumentf("%s must be a non-empty string", name)
	}
	return s.StringValue, nil
}

func effectsToList(effects []equipment.ItemEffect) []interface{} {
	list := make([]interface{}, 0, len(effects))
	for _, e := range effects {
		list = append(list, map[string]interface{}{
			"type":  string(e.Type),
			"value": e.Value,
		})
	}
	return list
}

func itemToMap(item *equipment.Item) map[string]interface{} {
	return map[string]interface{}{
		"id":                   item.ID().String(),
		"prototype_id":         item.PrototypeID().String(),
		"creator_character_id": item.CreatorCharacterID().String(),
		"name":                 item.Name(),
		"description":          item.Description(),
		"image_file_path":      item.ImageFilePath(),
		"type":                 item.Type().String(),
		"effects":              effectsToList(item.Effects()),
		"price":                item.Price().Amount(),
	}
}

func prototypeToMap(p *equipment.ItemPrototype) map[string]interface{} {
	return map[string]interface{}{
		"id":              p.ID().String(),
		"name":            p.Name(),
		"description":     p.Description(),
		"image_file_path": p.ImageFilePath(),
		"type":            p.Type().String(),
		"effects":         effectsToList(p.Effects()),
		"price":           p.Price().Amount(),
	}
}

func toStruct(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}
