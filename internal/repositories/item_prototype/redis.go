package itemprototype

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

const (
	prototypeKeyPrefix = "item_prototype:"
	indexKey           = "item_prototype:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis prototype repository
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed prototype repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

// GetKey returns the Redis key for a prototype
func GetKey(id ids.ItemPrototypeID) string {
	return prototypeKeyPrefix + id.String()
}

// IndexKey returns the Redis key of the set holding every prototype ID
func IndexKey() string {
	return indexKey
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	prototype, err := r.load(ctx, GetKey(input.ID))
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item prototype with ID %s not found", input.ID).
				WithMeta("item_prototype_id", input.ID.String())
		}
		return nil, errors.Wrapf(err, "failed to get item prototype %s", input.ID)
	}

	return &GetOutput{ItemPrototype: prototype}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.ItemPrototype == nil {
		return nil, errors.InvalidArgument("item prototype cannot be nil")
	}

	data := input.ItemPrototype.ToData()
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item prototype data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(data.ID), raw, 0)
	added := pipe.SAdd(ctx, indexKey, data.ID.String())

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save item prototype %s", data.ID)
	}

	created := added.Val() > 0
	slog.DebugContext(ctx, "item prototype saved",
		"item_prototype_id", data.ID.String(),
		"name", data.Name,
		"created", created)

	return &SaveOutput{Created: created}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	members, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list item prototypes")
	}

	prototypes := make([]*equipment.ItemPrototype, 0, len(members))
	for _, member := range members {
		prototype, err := r.load(ctx, prototypeKeyPrefix+member)
		if err == redis.Nil {
			slog.WarnContext(ctx, "dangling item prototype index entry", "item_prototype_id", member)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load item prototype %s", member)
		}
		prototypes = append(prototypes, prototype)
	}

	sort.Slice(prototypes, func(i, j int) bool {
		if prototypes[i].Name() != prototypes[j].Name() {
			return prototypes[i].Name() < prototypes[j].Name()
		}
		return prototypes[i].ID().String() < prototypes[j].ID().String()
	})

	return &ListOutput{ItemPrototypes: prototypes}, nil
}

func (r *redisRepository) load(ctx context.Context, key string) (*equipment.ItemPrototype, error) {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var data equipment.ItemPrototypeData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal item prototype data")
	}

	prototype, err := equipment.NewItemPrototype(&data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored item prototype is invalid")
	}
	return prototype, nil
}
