package maps

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/pkg/clock"
)

type storedMap struct {
	snapshot  string
	updatedAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]storedMap
}

// NewInMemory creates a new in-memory repository. A nil clock uses the system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]storedMap),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a snapshot of the map
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Map.ID] = storedMap{snapshot: snapshot, updatedAt: now}

	return &SaveOutput{UpdatedAt: now}, nil
}

// Get retrieves a map by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDRequired)
	}

	r.mu.RLock()
	stored, exists := r.store[input.MapID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}

	m, err := gridmap.Deserialize(stored.snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "stored map %s is unreadable", input.MapID)
	}

	return &GetOutput{Map: m, UpdatedAt: stored.updatedAt}, nil
}

// Delete removes a map
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.MapID == "" {
		return nil, errors.InvalidArgument(errMapIDRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.MapID]; !exists {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}
	delete(r.store, input.MapID)

	return &DeleteOutput{}, nil
}

// Update holds the write lock across the read and the write
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.store[input.MapID]
	if !exists {
		return nil, errors.NotFound(errMapNotFound).ForMap(input.MapID)
	}

	current, err := gridmap.Deserialize(stored.snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "stored map %s is unreadable", input.MapID)
	}

	next, err := applyUpdate(input, current)
	if err != nil {
		return nil, err
	}

	snapshot, err := gridmap.Serialize(next)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize map")
	}

	now := r.clock.Now()
	r.store[input.MapID] = storedMap{snapshot: snapshot, updatedAt: now}

	return &UpdateOutput{Map: next, UpdatedAt: now}, nil
}
