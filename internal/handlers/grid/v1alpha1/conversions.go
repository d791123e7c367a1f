package v1alpha1

import (
	"time"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
)

func toPosition(p grid.Position) *gridv1alpha1.Position {
	return &gridv1alpha1.Position{X: int32(p.X), Y: int32(p.Y)} // #nosec G115 -- map dimensions are bounded
}

func toPositions(ps []grid.Position) []*gridv1alpha1.Position {
	out := make([]*gridv1alpha1.Position, len(ps))
	for i, p := range ps {
		out[i] = toPosition(p)
	}
	return out
}

func fromPosition(p *gridv1alpha1.Position) grid.Position {
	return grid.Position{X: int(p.GetX()), Y: int(p.GetY())}
}

func fromPositions(ps []*gridv1alpha1.Position) []grid.Position {
	out := make([]grid.Position, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, fromPosition(p))
		}
	}
	return out
}

// parseMovementType maps a wire name to a movement type. Empty means foot.
func parseMovementType(name string) (grid.MovementType, error) {
	if name == "" {
		return grid.MovementFoot, nil
	}
	mt, err := grid.ParseMovementType(name)
	if err != nil {
		return 0, errors.InvalidArgumentf("unknown movement type %q", name)
	}
	return mt, nil
}

func fromUnits(units []*gridv1alpha1.Unit) ([]grid.Unit, error) {
	out := make([]grid.Unit, 0, len(units))
	for i, u := range units {
		if u == nil {
			continue
		}
		mt, err := parseMovementType(u.MovementType)
		if err != nil {
			return nil, errors.InvalidArgumentf("units[%d]: unknown movement type %q", i, u.MovementType)
		}

		unit := grid.Unit{
			ID:           u.Id,
			Team:         u.Team,
			IsAlive:      u.IsAlive,
			MovementType: mt,
			CurrentStats: grid.UnitStats{Movement: int(u.Movement)},
		}
		if u.Position != nil {
			pos := fromPosition(u.Position)
			unit.Position = &pos
		}
		out = append(out, unit)
	}
	return out, nil
}

func toTerrain(t grid.TerrainData) *gridv1alpha1.Terrain {
	out := &gridv1alpha1.Terrain{
		Type:         string(t.Type),
		MovementCost: make(map[string]int32, grid.MovementTypeCount),
		DefenseBonus: int32(t.DefenseBonus), // #nosec G115 -- catalog values are small
		EvasionBonus: int32(t.EvasionBonus), // #nosec G115
		HeightLevel:  int32(t.HeightLevel),  // #nosec G115
		Passable:     make(map[string]bool, grid.MovementTypeCount),
	}
	for _, mt := range grid.AllMovementTypes() {
		out.MovementCost[mt.String()] = int32(t.MovementCost.For(mt)) // #nosec G115
		out.Passable[mt.String()] = t.Passable.For(mt)
	}
	return out
}

func toBattleMap(m *grid.Map, updatedAt time.Time) *gridv1alpha1.BattleMap {
	if m == nil {
		return nil
	}

	out := &gridv1alpha1.BattleMap{
		Id:              m.ID,
		Name:            m.Name,
		Width:           int32(m.Width),  // #nosec G115
		Height:          int32(m.Height), // #nosec G115
		GridType:        string(m.GridType),
		Rows:            make([]*gridv1alpha1.TileRow, len(m.Tiles)),
		DeploymentZones: toPositions(m.DeploymentZones),
	}
	if !updatedAt.IsZero() {
		out.UpdatedAt = updatedAt.Format(time.RFC3339)
	}

	for y, row := range m.Tiles {
		tiles := make([]*gridv1alpha1.Tile, len(row))
		for x, t := range row {
			tiles[x] = &gridv1alpha1.Tile{
				Position:         toPosition(t.Position),
				Terrain:          toTerrain(t.Terrain),
				OccupantId:       t.OccupantID,
				ItemId:           t.ItemID,
				IsChest:          t.IsChest,
				IsDoor:           t.IsDoor,
				IsDeploymentZone: t.IsDeploymentZone,
				FogRevealed:      t.FogRevealed,
			}
		}
		out.Rows[y] = &gridv1alpha1.TileRow{Tiles: tiles}
	}

	return out
}
