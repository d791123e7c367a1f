package gridmap

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/KirkDiggler/tactics-grid/internal/entities/grid"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
)

// Snapshot wire format. Field names are part of the save contract.
type wireMap struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	GridType        grid.GridType   `json:"gridType"`
	Tiles           [][]wireTile    `json:"tiles"`
	DeploymentZones []grid.Position `json:"deploymentZones"`
}

type wireTile struct {
	Position         grid.Position `json:"position"`
	Terrain          wireTerrain   `json:"terrain"`
	OccupantID       *string       `json:"occupantId"`
	ItemID           *string       `json:"itemId"`
	IsChest          bool          `json:"isChest"`
	IsDoor           bool          `json:"isDoor"`
	IsDeploymentZone bool          `json:"isDeploymentZone"`
	FogRevealed      bool          `json:"fogRevealed"`
}

type wireTerrain struct {
	Type         grid.TerrainType `json:"type"`
	MovementCost map[string]int   `json:"movementCost"`
	DefenseBonus int              `json:"defenseBonus"`
	EvasionBonus int              `json:"evasionBonus"`
	HeightLevel  int              `json:"heightLevel"`
	Passable     map[string]bool  `json:"passable"`
}

// Serialize encodes m as a JSON snapshot
func Serialize(m *grid.Map) (string, error) {
	if m == nil {
		return "", errors.InvalidArgument("map is required")
	}

	w := wireMap{
		ID:              m.ID,
		Name:            m.Name,
		Width:           m.Width,
		Height:          m.Height,
		GridType:        m.GridType,
		Tiles:           make([][]wireTile, len(m.Tiles)),
		DeploymentZones: m.DeploymentZones,
	}
	if w.DeploymentZones == nil {
		w.DeploymentZones = []grid.Position{}
	}

	for y, row := range m.Tiles {
		w.Tiles[y] = make([]wireTile, len(row))
		for x, t := range row {
			w.Tiles[y][x] = toWireTile(t)
		}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal map snapshot")
	}
	return string(data), nil
}

func toWireTile(t grid.Tile) wireTile {
	wt := wireTile{
		Position: t.Position,
		Terrain: wireTerrain{
			Type:         t.Terrain.Type,
			MovementCost: make(map[string]int, grid.MovementTypeCount),
			DefenseBonus: t.Terrain.DefenseBonus,
			EvasionBonus: t.Terrain.EvasionBonus,
			HeightLevel:  t.Terrain.HeightLevel,
			Passable:     make(map[string]bool, grid.MovementTypeCount),
		},
		OccupantID:       nullable(t.OccupantID),
		ItemID:           nullable(t.ItemID),
		IsChest:          t.IsChest,
		IsDoor:           t.IsDoor,
		IsDeploymentZone: t.IsDeploymentZone,
		FogRevealed:      t.FogRevealed,
	}
	for _, mt := range grid.AllMovementTypes() {
		wt.Terrain.MovementCost[mt.String()] = t.Terrain.MovementCost.For(mt)
		wt.Terrain.Passable[mt.String()] = t.Terrain.Passable.For(mt)
	}
	return wt
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Raw shapes used while validating. Every field stays raw so that missing
// fields, nulls and wrong JSON types can be told apart and reported per field.
type rawMap struct {
	ID              json.RawMessage `json:"id"`
	Name            json.RawMessage `json:"name"`
	Width           json.RawMessage `json:"width"`
	Height          json.RawMessage `json:"height"`
	GridType        json.RawMessage `json:"gridType"`
	Tiles           json.RawMessage `json:"tiles"`
	DeploymentZones json.RawMessage `json:"deploymentZones"`
}

type rawTile struct {
	Position         json.RawMessage `json:"position"`
	Terrain          json.RawMessage `json:"terrain"`
	OccupantID       json.RawMessage `json:"occupantId"`
	ItemID           json.RawMessage `json:"itemId"`
	IsChest          json.RawMessage `json:"isChest"`
	IsDoor           json.RawMessage `json:"isDoor"`
	IsDeploymentZone json.RawMessage `json:"isDeploymentZone"`
	FogRevealed      json.RawMessage `json:"fogRevealed"`
}

type rawTerrain struct {
	Type         json.RawMessage `json:"type"`
	MovementCost json.RawMessage `json:"movementCost"`
	DefenseBonus json.RawMessage `json:"defenseBonus"`
	EvasionBonus json.RawMessage `json:"evasionBonus"`
	HeightLevel  json.RawMessage `json:"heightLevel"`
	Passable     json.RawMessage `json:"passable"`
}

type rawPosition struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
}

// Deserialize decodes and validates a JSON snapshot.
//
// Text that is not JSON fails with a DataLoss error (see IsParseError).
// Well-formed JSON that does not describe a valid map fails with an
// InvalidArgument error listing every offending field (see IsValidationError).
// No partial map is ever returned.
func Deserialize(data string) (*grid.Map, error) {
	if !json.Valid([]byte(data)) {
		var raw any
		cause := json.Unmarshal([]byte(data), &raw)
		if cause == nil {
			cause = fmt.Errorf("invalid JSON")
		}
		return nil, errors.WrapWithCode(cause, errors.CodeDataLoss, "map snapshot is not valid JSON")
	}

	var raw rawMap
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, errors.NewValidationBuilder().Field("map", "must be a JSON object").Build()
	}

	d := &decoder{vb: errors.NewValidationBuilder()}
	m := &grid.Map{
		ID:       d.str("id", raw.ID),
		Name:     d.str("name", raw.Name),
		Width:    d.integer("width", raw.Width),
		Height:   d.integer("height", raw.Height),
		GridType: grid.GridType(d.str("gridType", raw.GridType)),
	}

	dimsOK := true
	if raw.Width != nil && m.Width <= 0 {
		d.vb.Field("width", "must be greater than 0")
		dimsOK = false
	}
	if raw.Height != nil && m.Height <= 0 {
		d.vb.Field("height", "must be greater than 0")
		dimsOK = false
	}
	if raw.GridType != nil && !m.GridType.IsValid() {
		d.vb.Fieldf("gridType", "must be one of: %s, %s", grid.GridTypeSquare, grid.GridTypeHex)
	}

	m.Tiles = d.tiles(raw.Tiles, m.Width, m.Height, dimsOK)
	m.DeploymentZones = d.deploymentZones(raw.DeploymentZones, m, dimsOK)

	if err := d.vb.Build(); err != nil {
		return nil, err
	}
	return m, nil
}

// IsParseError reports whether err came from snapshot text that is not JSON
func IsParseError(err error) bool {
	return errors.IsDataLoss(err)
}

// IsValidationError reports whether err came from a snapshot with an invalid structure
func IsValidationError(err error) bool {
	return errors.IsInvalidArgument(err)
}

type decoder struct {
	vb *errors.ValidationBuilder
}

func (d *decoder) present(field string, raw json.RawMessage) bool {
	if raw == nil {
		d.vb.RequiredField(field)
		return false
	}
	return true
}

func (d *decoder) str(field string, raw json.RawMessage) string {
	if !d.present(field, raw) {
		return ""
	}
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		d.vb.Field(field, "must be a string")
	}
	return s
}

func (d *decoder) nullableStr(field string, raw json.RawMessage) string {
	if !d.present(field, raw) || isNull(raw) {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		d.vb.Field(field, "must be a string or null")
	}
	return s
}

func (d *decoder) boolean(field string, raw json.RawMessage) bool {
	if !d.present(field, raw) {
		return false
	}
	var b bool
	if isNull(raw) || json.Unmarshal(raw, &b) != nil {
		d.vb.Field(field, "must be a boolean")
	}
	return b
}

func (d *decoder) integer(field string, raw json.RawMessage) int {
	if !d.present(field, raw) {
		return 0
	}
	return d.number(field, raw)
}

func (d *decoder) number(field string, raw json.RawMessage) int {
	var f float64
	if isNull(raw) || json.Unmarshal(raw, &f) != nil {
		d.vb.Field(field, "must be a number")
		return 0
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		d.vb.Field(field, "must be an integer")
		return 0
	}
	return int(f)
}

func (d *decoder) array(field string, raw json.RawMessage) ([]json.RawMessage, bool) {
	if !d.present(field, raw) {
		return nil, false
	}
	var items []json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &items) != nil {
		d.vb.Field(field, "must be an array")
		return nil, false
	}
	return items, true
}

func (d *decoder) object(field string, raw json.RawMessage, into any) bool {
	if !d.present(field, raw) {
		return false
	}
	if isNull(raw) || json.Unmarshal(raw, into) != nil {
		d.vb.Field(field, "must be an object")
		return false
	}
	return true
}

func (d *decoder) position(field string, raw json.RawMessage) (grid.Position, bool) {
	var rp rawPosition
	if !d.object(field, raw, &rp) {
		return grid.Position{}, false
	}
	x := d.integer(field+".x", rp.X)
	y := d.integer(field+".y", rp.Y)
	return grid.Position{X: x, Y: y}, rp.X != nil && rp.Y != nil
}

func (d *decoder) tiles(raw json.RawMessage, width, height int, dimsOK bool) [][]grid.Tile {
	rows, ok := d.array("tiles", raw)
	if !ok {
		return nil
	}
	if dimsOK && len(rows) != height {
		d.vb.Fieldf("tiles", "must have %d rows, got %d", height, len(rows))
	}

	out := make([][]grid.Tile, len(rows))
	for y, rawRow := range rows {
		rowField := fmt.Sprintf("tiles[%d]", y)
		cells, ok := d.array(rowField, rawRow)
		if !ok {
			continue
		}
		if dimsOK && len(cells) != width {
			d.vb.Fieldf(rowField, "must have %d tiles, got %d", width, len(cells))
		}

		out[y] = make([]grid.Tile, len(cells))
		for x, rawCell := range cells {
			out[y][x] = d.tile(fmt.Sprintf("tiles[%d][%d]", y, x), rawCell, x, y)
		}
	}
	return out
}

func (d *decoder) tile(field string, raw json.RawMessage, x, y int) grid.Tile {
	var rt rawTile
	if !d.object(field, raw, &rt) {
		return grid.Tile{}
	}

	t := grid.Tile{
		Terrain:          d.terrain(field+".terrain", rt.Terrain),
		OccupantID:       d.nullableStr(field+".occupantId", rt.OccupantID),
		ItemID:           d.nullableStr(field+".itemId", rt.ItemID),
		IsChest:          d.boolean(field+".isChest", rt.IsChest),
		IsDoor:           d.boolean(field+".isDoor", rt.IsDoor),
		IsDeploymentZone: d.boolean(field+".isDeploymentZone", rt.IsDeploymentZone),
		FogRevealed:      d.boolean(field+".fogRevealed", rt.FogRevealed),
	}

	pos, ok := d.position(field+".position", rt.Position)
	if ok && (pos.X != x || pos.Y != y) {
		d.vb.Fieldf(field+".position", "must be (%d,%d), got %s", x, y, pos)
	}
	t.Position = grid.Position{X: x, Y: y}

	return t
}

func (d *decoder) terrain(field string, raw json.RawMessage) grid.TerrainData {
	var rt rawTerrain
	if !d.object(field, raw, &rt) {
		return grid.TerrainData{}
	}

	data := grid.TerrainData{
		Type:         grid.TerrainType(d.str(field+".type", rt.Type)),
		DefenseBonus: d.integer(field+".defenseBonus", rt.DefenseBonus),
		EvasionBonus: d.integer(field+".evasionBonus", rt.EvasionBonus),
		HeightLevel:  d.integer(field+".heightLevel", rt.HeightLevel),
	}
	if rt.Type != nil && !data.Type.IsValid() {
		d.vb.Fieldf(field+".type", "unknown terrain type %q", data.Type)
	}

	var costOK, passableOK [grid.MovementTypeCount]bool

	var costs map[string]json.RawMessage
	if d.object(field+".movementCost", rt.MovementCost, &costs) {
		d.perMovementType(field+".movementCost", costs, func(mt grid.MovementType, key string, v json.RawMessage) {
			before := d.vb.Count()
			data.MovementCost[mt] = d.number(key, v)
			if d.vb.Count() > before {
				return
			}
			if data.MovementCost[mt] < 1 {
				d.vb.Field(key, "must be at least 1")
				return
			}
			costOK[mt] = true
		})
	}

	var passable map[string]json.RawMessage
	if d.object(field+".passable", rt.Passable, &passable) {
		d.perMovementType(field+".passable", passable, func(mt grid.MovementType, key string, v json.RawMessage) {
			before := d.vb.Count()
			data.Passable[mt] = d.boolean(key, v)
			passableOK[mt] = d.vb.Count() == before
		})
	}

	// passable is derived from cost; a snapshot may not disagree with it
	for _, mt := range grid.AllMovementTypes() {
		if !costOK[mt] || !passableOK[mt] {
			continue
		}
		if data.Passable[mt] != (data.MovementCost[mt] < grid.ImpassableCost) {
			d.vb.Fieldf(field+".passable."+mt.String(),
				"must be %t for movement cost %d", !data.Passable[mt], data.MovementCost[mt])
		}
	}

	return data
}

// perMovementType requires exactly one entry per movement type
func (d *decoder) perMovementType(
	field string,
	entries map[string]json.RawMessage,
	set func(mt grid.MovementType, key string, v json.RawMessage),
) {
	for name := range entries {
		if _, err := grid.ParseMovementType(name); err != nil {
			d.vb.Fieldf(field, "unknown movement type %q", name)
		}
	}
	for _, mt := range grid.AllMovementTypes() {
		key := field + "." + mt.String()
		v, ok := entries[mt.String()]
		if !ok {
			d.vb.RequiredField(key)
			continue
		}
		set(mt, key, v)
	}
}

func (d *decoder) deploymentZones(raw json.RawMessage, m *grid.Map, dimsOK bool) []grid.Position {
	items, ok := d.array("deploymentZones", raw)
	if !ok {
		return nil
	}

	out := make([]grid.Position, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("deploymentZones[%d]", i)
		pos, ok := d.position(field, item)
		if !ok {
			continue
		}
		if dimsOK && (pos.X < 0 || pos.Y < 0 || pos.X >= m.Width || pos.Y >= m.Height) {
			d.vb.Fieldf(field, "position %s is outside the %dx%d map", pos, m.Width, m.Height)
		}
		out = append(out, pos)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
