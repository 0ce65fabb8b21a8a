package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/character"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-equipment/internal/redis"
	"github.com/KirkDiggler/rpg-equipment/internal/types/ids"
)

const (
	characterKeyPrefix = "character:"

	// Error messages
	errCharacterNil = "character cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// GetKey returns the Redis key for a character
// Exposed for testing purposes
func GetKey(id ids.CharacterID) string {
	return characterKeyPrefix + id.String()
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data := input.Character.ToData()
	now := r.clock.Now().Unix()
	data.CreatedAt = now
	data.UpdatedAt = now

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}

	// SETNX keeps the existence check and the write atomic
	created, err := r.client.SetNX(ctx, GetKey(data.ID), raw, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character %s", data.ID)
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", data.ID).
			WithMeta("character_id", data.ID.String())
	}

	stored, err := character.LoadFromData(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created character")
	}

	return &CreateOutput{Character: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID.String())
		}
		return nil, errors.Wrapf(err, "failed to get character %s", input.ID)
	}

	var data character.Data
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal character data")
	}

	c, err := character.LoadFromData(&data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored character is invalid")
	}

	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data := input.Character.ToData()
	data.UpdatedAt = r.clock.Now().Unix()

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}

	// SET XX only writes when the key already exists
	updated, err := r.client.SetXX(ctx, GetKey(data.ID), raw, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", data.ID)
	}
	if !updated {
		return nil, errors.NotFoundf("character with ID %s not found", data.ID).
			WithMeta("character_id", data.ID.String())
	}

	slog.DebugContext(ctx, "character updated",
		"character_id", data.ID.String(),
		"inventory_size", len(data.Inventory))

	stored, err := character.LoadFromData(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load updated character")
	}

	return &UpdateOutput{Character: stored}, nil
}
