package item

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

const (
	itemKeyPrefix    = "item:"
	creatorKeyPrefix = "item:creator:"
)

type redisRepository struct {
	client      redisclient.Client
	idGenerator idgen.Generator
}

// RedisConfig contains configuration for the Redis item repository
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID()
	}

	return &redisRepository{
		client:      cfg.Client,
		idGenerator: gen,
	}, nil
}

// GetKey returns the Redis key for an item
func GetKey(id ids.ItemID) string {
	return itemKeyPrefix + id.String()
}

// GetCreatorKey returns the Redis key of the set indexing a character's created items
func GetCreatorKey(id ids.CharacterID) string {
	return creatorKeyPrefix + id.String()
}

func (r *redisRepository) NextIdentity() ids.ItemID {
	raw := r.idGenerator.Generate()
	id, err := ids.ItemIDFromString(raw)
	if err != nil {
		// A generator producing non UUIDs is a wiring mistake
		panic(fmt.Sprintf("item: generator returned invalid id %q: %v", raw, err))
	}
	return id
}

func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}

	data := input.Item.ToData()
	key := GetKey(data.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check item %s", data.ID)
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", data.ID).
			WithMeta("item_id", data.ID.String())
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, raw, 0)
	pipe.SAdd(ctx, GetCreatorKey(data.CreatorCharacterID), data.ID.String())

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store item %s", data.ID)
	}

	slog.DebugContext(ctx, "item stored",
		"item_id", data.ID.String(),
		"prototype_id", data.PrototypeID.String(),
		"creator_character_id", data.CreatorCharacterID.String())

	return &AddOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	item, err := r.load(ctx, GetKey(input.ID))
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID).
				WithMeta("item_id", input.ID.String())
		}
		return nil, errors.Wrapf(err, "failed to get item %s", input.ID)
	}

	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) ListByCreator(ctx context.Context, input ListByCreatorInput) (*ListByCreatorOutput, error) {
	members, err := r.client.SMembers(ctx, GetCreatorKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items of character %s", input.CharacterID)
	}
	sort.Strings(members)

	items := make([]*equipment.Item, 0, len(members))
	for _, member := range members {
		item, err := r.load(ctx, itemKeyPrefix+member)
		if err == redis.Nil {
			// Index entry without an item; skip it
			slog.WarnContext(ctx, "dangling item index entry",
				"character_id", input.CharacterID.String(),
				"item_id", member)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load item %s", member)
		}
		items = append(items, item)
	}

	return &ListByCreatorOutput{Items: items}, nil
}

// load returns redis.Nil unchanged so callers can decide what missing means
func (r *redisRepository) load(ctx context.Context, key string) (*equipment.Item, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var data equipment.ItemData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal item data")
	}

	item, err := equipment.NewItem(&data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored item is invalid")
	}
	return item, nil
}
