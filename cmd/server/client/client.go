// Package client provides test commands for the tactics grid gRPC service
package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Shared by most commands
	mapID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the tactics grid",
	Long:  `Client commands allow you to exercise the tactics grid by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Map lifecycle
	ClientCmd.AddCommand(createMapCmd)
	ClientCmd.AddCommand(getMapCmd)
	ClientCmd.AddCommand(importMapCmd)
	ClientCmd.AddCommand(exportMapCmd)
	ClientCmd.AddCommand(deleteMapCmd)
	ClientCmd.AddCommand(setTerrainCmd)

	// Spatial queries
	ClientCmd.AddCommand(findPathCmd)
	ClientCmd.AddCommand(movementRangeCmd)
	ClientCmd.AddCommand(attackRangeCmd)
	ClientCmd.AddCommand(dangerZoneCmd)
	ClientCmd.AddCommand(lineOfSightCmd)
	ClientCmd.AddCommand(fogCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGridClient creates a grid service client
func createGridClient() (gridv1alpha1.GridServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return gridv1alpha1.NewGridServiceClient(conn), cleanup, nil
}

// parsePosition parses "x,y"
func parsePosition(s string) (*gridv1alpha1.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid position %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid position %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid position %q: %w", s, err)
	}
	return &gridv1alpha1.Position{X: int32(x), Y: int32(y)}, nil // #nosec G115 -- CLI input
}

func parsePositions(values []string) ([]*gridv1alpha1.Position, error) {
	out := make([]*gridv1alpha1.Position, 0, len(values))
	for _, v := range values {
		p, err := parsePosition(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// parseUnit parses "id:team:x,y:movement[:movement_type]"
func parseUnit(s string) (*gridv1alpha1.Unit, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return nil, fmt.Errorf("invalid unit %q: expected id:team:x,y:movement[:movement_type]", s)
	}

	pos, err := parsePosition(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid unit %q: %w", s, err)
	}
	movement, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid unit %q: movement: %w", s, err)
	}

	unit := &gridv1alpha1.Unit{
		Id:       parts[0],
		Team:     parts[1],
		IsAlive:  true,
		Position: pos,
		Movement: int32(movement), // #nosec G115 -- CLI input
	}
	if len(parts) == 5 {
		unit.MovementType = parts[4]
	}
	return unit, nil
}

func parseUnits(values []string) ([]*gridv1alpha1.Unit, error) {
	out := make([]*gridv1alpha1.Unit, 0, len(values))
	for _, v := range values {
		u, err := parseUnit(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func formatPositions(positions []*gridv1alpha1.Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("(%d,%d)", p.GetX(), p.GetY())
	}
	return strings.Join(parts, " ")
}

// printMap renders a map as one character per tile. Occupied tiles show '@'.
func printMap(m *gridv1alpha1.BattleMap) {
	if m == nil {
		return
	}

	fmt.Printf("Map ID: %s\n", m.Id)
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("Size: %dx%d (%s)\n", m.Width, m.Height, m.GridType)
	if m.UpdatedAt != "" {
		fmt.Printf("Updated: %s\n", m.UpdatedAt)
	}
	fmt.Println()

	for y, row := range m.Rows {
		if m.GridType == "hex" && y%2 == 1 {
			fmt.Print(" ")
		}
		for _, tile := range row.Tiles {
			fmt.Printf("%c ", tileGlyph(tile))
		}
		fmt.Println()
	}

	if len(m.DeploymentZones) > 0 {
		fmt.Printf("\nDeployment zones: %s\n", formatPositions(m.DeploymentZones))
	}
}

func tileGlyph(t *gridv1alpha1.Tile) rune {
	if t.OccupantId != "" {
		return '@'
	}
	if t.Terrain == nil || t.Terrain.Type == "" {
		return '?'
	}
	switch t.Terrain.Type {
	case "plains":
		return '.'
	case "bridge":
		return '='
	case "water":
		return '~'
	default:
		return rune(t.Terrain.Type[0])
	}
}
