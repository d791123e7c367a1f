// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/repositories/maps"
	mapsmock "github.com/KirkDiggler/tactics-grid/internal/repositories/maps/mock"
)

// SavedAt is the timestamp reported by the simulated repository writes
var SavedAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectMapGet sets up a mock expectation for loading a map from the repository
func ExpectMapGet(
	ctx context.Context, mockRepo *mapsmock.MockRepository,
	mapID string, m *grid.Map, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, &maps.GetInput{MapID: mapID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, &maps.GetInput{MapID: mapID}).
		Return(&maps.GetOutput{Map: m, UpdatedAt: SavedAt}, nil)
}

// ExpectMapSave sets up a mock expectation for storing a map. The saved map is
// handed to inspect, when set, before the simulated write succeeds.
func ExpectMapSave(ctx context.Context, mockRepo *mapsmock.MockRepository, inspect func(*grid.Map)) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *maps.SaveInput) (*maps.SaveOutput, error) {
			if inspect != nil {
				inspect(input.Map)
			}
			return &maps.SaveOutput{UpdatedAt: SavedAt}, nil
		})
}

// ExpectMapSaveError sets up a mock expectation for a failing write
func ExpectMapSaveError(ctx context.Context, mockRepo *mapsmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil, err)
}

// ExpectMapDelete sets up a mock expectation for deleting a map
func ExpectMapDelete(ctx context.Context, mockRepo *mapsmock.MockRepository, mapID string, err error) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Delete(ctx, &maps.DeleteInput{MapID: mapID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Delete(ctx, &maps.DeleteInput{MapID: mapID}).
		Return(&maps.DeleteOutput{}, nil)
}

// ExpectMapUpdate sets up a mock expectation for a read-modify-write of a map.
// The update's Apply runs against current, and the result is handed to
// inspect, when set, before the simulated write succeeds.
func ExpectMapUpdate(
	ctx context.Context, mockRepo *mapsmock.MockRepository,
	mapID string, current *grid.Map, inspect func(*grid.Map),
) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *maps.UpdateInput) (*maps.UpdateOutput, error) {
			if input.MapID != mapID {
				return nil, fmt.Errorf("unexpected map ID %q", input.MapID)
			}
			next, err := input.Apply(current)
			if err != nil {
				return nil, err
			}
			if inspect != nil {
				inspect(next)
			}
			return &maps.UpdateOutput{Map: next, UpdatedAt: SavedAt}, nil
		})
}

// ExpectMapUpdateError sets up a mock expectation for a failing read-modify-write
func ExpectMapUpdateError(ctx context.Context, mockRepo *mapsmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil, err)
}
