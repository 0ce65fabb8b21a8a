// Package catalog loads item prototype definitions from YAML and writes
// them into the prototype repository.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

// Catalog is the document stored in a catalog file
type Catalog struct {
	Version    int     `yaml:"version"`
	Prototypes []Entry `yaml:"prototypes" validate:"required,min=1,dive"`
}

// Entry describes one prototype
type Entry struct {
	ID            string        `yaml:"id" validate:"required,uuid"`
	Name          string        `yaml:"name" validate:"required,max=128"`
	Description   string        `yaml:"description" validate:"max=1024"`
	ImageFilePath string        `yaml:"image_file_path"`
	Type          string        `yaml:"type" validate:"required,item_type"`
	Price         int           `yaml:"price" validate:"gte=0"`
	Effects       []EffectEntry `yaml:"effects" validate:"dive"`
}

// EffectEntry describes one effect of a prototype
type EffectEntry struct {
	Type  string `yaml:"type" validate:"required,effect_type"`
	Value int    `yaml:"value"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("item_type", func(fl validator.FieldLevel) bool {
		_, ok := equipment.ItemTypeFromString(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("effect_type", func(fl validator.FieldLevel) bool {
		return equipment.EffectType(fl.Field().String()).IsValid()
	})
	return v
}

// LoadFile reads and validates a catalog file
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			fmt.Sprintf("failed to read catalog %s", path))
	}
	return Load(bytes.NewReader(raw))
}

// Load decodes and validates a catalog
func Load(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("catalog is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every entry and rejects duplicate ids
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	if err := validate.Struct(c); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog")
		}
		for _, fe := range fieldErrs {
			vb.Field(fieldPath(fe), describe(fe))
		}
	}

	seen := make(map[string]int, len(c.Prototypes))
	for i, entry := range c.Prototypes {
		key := strings.ToLower(entry.ID)
		if key == "" {
			continue
		}
		if first, ok := seen[key]; ok {
			vb.Fieldf(fmt.Sprintf("prototypes[%d].id", i), "duplicate of prototypes[%d]", first)
			continue
		}
		seen[key] = i
	}

	return vb.Build()
}

// ItemPrototypes converts the entries into domain prototypes
func (c *Catalog) ItemPrototypes() ([]*equipment.ItemPrototype, error) {
	prototypes := make([]*equipment.ItemPrototype, 0, len(c.Prototypes))
	for i, entry := range c.Prototypes {
		p, err := entry.toItemPrototype()
		if err != nil {
			return nil, errors.Wrapf(err, "prototypes[%d]", i)
		}
		prototypes = append(prototypes, p)
	}
	return prototypes, nil
}

func (e Entry) toItemPrototype() (*equipment.ItemPrototype, error) {
	id, err := ids.ItemPrototypeIDFromString(e.ID)
	if err != nil {
		return nil, err
	}

	effects := make([]equipment.ItemEffect, 0, len(e.Effects))
	for _, effect := range e.Effects {
		effects = append(effects, equipment.ItemEffect{
			Type:  equipment.EffectType(effect.Type),
			Value: effect.Value,
		})
	}

	itemType, _ := equipment.ItemTypeFromString(e.Type)

	return equipment.NewItemPrototype(&equipment.ItemPrototypeData{
		ID:            id,
		Name:          e.Name,
		Description:   e.Description,
		ImageFilePath: e.ImageFilePath,
		Type:          itemType,
		Effects:       effects,
		Price:         e.Price,
	})
}

// fieldPath turns "Catalog.Prototypes[0].Effects[1].Type" into the yaml path
// "prototypes[0].effects[1].type"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, part := range parts {
		parts[i] = yamlName(part)
	}
	return strings.Join(parts, ".")
}

func yamlName(part string) string {
	name, index := part, ""
	if i := strings.IndexByte(part, '['); i >= 0 {
		name, index = part[:i], part[i:]
	}
	switch name {
	case "ImageFilePath":
		name = "image_file_path"
	case "ID":
		name = "id"
	default:
		name = strings.ToLower(name)
	}
	return name + index
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a UUID"
	case "item_type":
		return fmt.Sprintf("unknown item type %q", fe.Value())
	case "effect_type":
		return fmt.Sprintf("unknown effect type %q", fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s entries", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
