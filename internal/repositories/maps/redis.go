package maps

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/tactics-grid/internal/redis"
)

// MaxUpdateAttempts bounds how often Update re-reads a map that keeps changing under it
const MaxUpdateAttempts = 10

const (
	// KeyPrefix is prepended to map IDs: battlemap:{id}
	KeyPrefix = "battlemap:"

	// Hash fields of a stored map
	FieldSnapshot  = "snapshot"
	FieldUpdatedAt = "updated_at"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL expires maps that are not saved again; zero keeps them forever
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a Redis-backed map repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Key returns the Redis key holding the map with the given ID
func Key(mapID string) string {
	return KeyPrefix + mapID
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.Map == nil {
		return nil, errors.InvalidArgument(errMapRequired)
	}
	if input.Map.ID == "" {
		return nil, errors.InvalidArgument(errMapIDRequired)
	}

	snapshot, err := gridmap.Serialize(input.Map)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize map")
	}

	now := r.clock.Now()
	key := Key(input.Map.ID)

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.write(ctx, pipe, key, snapshot, now)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store map in Redis")
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDRequired)
	}

	fields, err := r.client.HGetAll(ctx, Key(input.MapID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get map from Redis")
	}

	snapshot, ok := fields[FieldSnapshot]
	if !ok {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}

	m, err := gridmap.Deserialize(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "stored map %s is unreadable", input.MapID)
	}

	out := &GetOutput{Map: m}
	if ts, ok := fields[FieldUpdatedAt]; ok {
		if parsed, parseErr := time.Parse(time.RFC3339Nano, ts); parseErr == nil {
			out.UpdatedAt = parsed
		}
	}

	return out, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDRequired)
	}

	removed, err := r.client.Del(ctx, Key(input.MapID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete map from Redis")
	}
	if removed == 0 {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}

	return &DeleteOutput{}, nil
}

// Update watches the map key so a write landing between the read and the
// write fails the transaction, then retries on the newer map.
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	key := Key(input.MapID)
	for attempt := 0; attempt < MaxUpdateAttempts; attempt++ {
		var out *UpdateOutput
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			var err error
			out, err = r.updateWatched(ctx, tx, key, input)
			return err
		}, key)

		switch {
		case err == nil:
			return out, nil
		case stderrors.Is(err, redis.TxFailedErr):
			continue
		}

		var typed *errors.Error
		if errors.As(err, &typed) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update map in Redis")
	}

	return nil, errors.Aborted("map kept changing during update").ForMap(input.MapID)
}

func (r *redisRepository) updateWatched(
	ctx context.Context,
	tx *redis.Tx,
	key string,
	input *UpdateInput,
) (*UpdateOutput, error) {
	fields, err := tx.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get map from Redis")
	}

	snapshot, ok := fields[FieldSnapshot]
	if !ok {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}

	current, err := gridmap.Deserialize(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "stored map %s is unreadable", input.MapID)
	}

	next, err := applyUpdate(input, current)
	if err != nil {
		return nil, err
	}

	nextSnapshot, err := gridmap.Serialize(next)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize map")
	}

	now := r.clock.Now()
	// TxFailedErr is returned unwrapped so Update can tell a lost race from a failure
	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.write(ctx, pipe, key, nextSnapshot, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Map: next, UpdatedAt: now}, nil
}

// write queues the commands that replace a stored map
func (r *redisRepository) write(ctx context.Context, pipe redis.Pipeliner, key, snapshot string, now time.Time) {
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, FieldSnapshot, snapshot, FieldUpdatedAt, now.Format(time.RFC3339Nano))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
}
