// Package maps stores battle map snapshots
package maps

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mapsmock github.com/KirkDiggler/tactics-grid/internal/repositories/maps Repository

// SaveInput contains the map to store. Any existing map with the same ID is replaced.
type SaveInput struct {
	Map *grid.Map
}

// SaveOutput contains the result of storing a map
type SaveOutput struct {
	UpdatedAt time.Time
}

// GetInput contains parameters for retrieving a map
type GetInput struct {
	MapID string
}

// GetOutput contains the stored map
type GetOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// DeleteInput contains parameters for deleting a map
type DeleteInput struct {
	MapID string
}

// DeleteOutput contains the result of deleting a map
type DeleteOutput struct{}

// UpdateInput names the map to change and the change to make. Apply receives
// the current map and returns its replacement; an error from Apply cancels the
// update without writing anything.
type UpdateInput struct {
	MapID string
	Apply func(*grid.Map) (*grid.Map, error)
}

// UpdateOutput contains the map as written
type UpdateOutput struct {
	Map       *grid.Map
	UpdatedAt time.Time
}

// Repository defines the interface for battle map storage.
// Maps are stored as serialized snapshots, so a returned map never aliases
// the one that was saved.
type Repository interface {
	// Save stores a snapshot of the map under its ID
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get loads the map with the given ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a map. Deleting a missing map returns NotFound.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Update reads, changes and writes a map as one step. A write that lands
	// between the read and the write makes Apply run again on the newer map.
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
}

// Error messages
const (
	errInputRequired = "input is required"
	errMapRequired   = "map is required"
	errMapIDRequired = "map ID is required"
	errMapNotFound   = "map not found"
	errApplyRequired = "apply function is required"
	errReturnedNil   = "update returned no map"
)

func validateUpdateInput(input *UpdateInput) error {
	if input == nil {
		return errors.InvalidArgument(errInputRequired)
	}
	if input.MapID == "" {
		return errors.InvalidArgument(errMapIDRequired)
	}
	if input.Apply == nil {
		return errors.InvalidArgument(errApplyRequired)
	}
	return nil
}

// applyUpdate runs the caller's change and checks it still describes the same map
func applyUpdate(input *UpdateInput, current *grid.Map) (*grid.Map, error) {
	next, err := input.Apply(current)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, errors.Internal(errReturnedNil).ForMap(input.MapID)
	}
	if next.ID != input.MapID {
		return nil, errors.Internal(fmt.Sprintf("update changed map ID to %q", next.ID)).ForMap(input.MapID)
	}
	return next, nil
}
