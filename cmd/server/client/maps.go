package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
)

var (
	mapName     string
	mapWidth    int32
	mapHeight   int32
	gridType    string
	deployZones []string
	snapshotIn  string
	terrainType string
	tilePos     string
)

var createMapCmd = &cobra.Command{
	Use:   "create-map",
	Short: "Create an all-plains battle map",
	RunE:  runCreateMap,
}

var getMapCmd = &cobra.Command{
	Use:   "get-map",
	Short: "Get a battle map by ID",
	RunE:  runGetMap,
}

var importMapCmd = &cobra.Command{
	Use:   "import-map",
	Short: "Import a battle map from a JSON snapshot file",
	RunE:  runImportMap,
}

var exportMapCmd = &cobra.Command{
	Use:   "export-map",
	Short: "Print the JSON snapshot of a battle map",
	RunE:  runExportMap,
}

var deleteMapCmd = &cobra.Command{
	Use:   "delete-map",
	Short: "Delete a battle map",
	RunE:  runDeleteMap,
}

var setTerrainCmd = &cobra.Command{
	Use:   "set-terrain",
	Short: "Change the terrain of one tile",
	RunE:  runSetTerrain,
}

func init() {
	createMapCmd.Flags().StringVar(&mapName, "name", "", "Map name")
	createMapCmd.Flags().Int32Var(&mapWidth, "width", 10, "Map width")
	createMapCmd.Flags().Int32Var(&mapHeight, "height", 10, "Map height")
	createMapCmd.Flags().StringVar(&gridType, "grid-type", "square", "Grid type: square or hex")
	createMapCmd.Flags().StringSliceVar(&deployZones, "deploy", nil, "Deployment zone positions as x,y")

	for _, cmd := range []*cobra.Command{getMapCmd, exportMapCmd, deleteMapCmd, setTerrainCmd} {
		cmd.Flags().StringVar(&mapID, "map-id", "", "Map ID (required)")
		_ = cmd.MarkFlagRequired("map-id") // nolint:errcheck // safe to ignore in init
	}

	importMapCmd.Flags().StringVar(&snapshotIn, "file", "", "Snapshot file (required)")
	importMapCmd.Flags().StringVar(&mapID, "map-id", "", "Override the map ID in the snapshot")
	_ = importMapCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	setTerrainCmd.Flags().StringVar(&tilePos, "at", "", "Tile position as x,y (required)")
	setTerrainCmd.Flags().StringVar(&terrainType, "terrain", "", "Terrain type (required)")
	_ = setTerrainCmd.MarkFlagRequired("at")      // nolint:errcheck // safe to ignore in init
	_ = setTerrainCmd.MarkFlagRequired("terrain") // nolint:errcheck // safe to ignore in init
}

func runCreateMap(_ *cobra.Command, _ []string) error {
	zones, err := parsePositions(deployZones)
	if err != nil {
		return err
	}

	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateMap(ctx, &gridv1alpha1.CreateMapRequest{
		Name:            mapName,
		Width:           mapWidth,
		Height:          mapHeight,
		GridType:        gridType,
		DeploymentZones: zones,
	})
	if err != nil {
		return fmt.Errorf("failed to create map: %w", err)
	}

	fmt.Printf("Created battle map\n\n")
	printMap(resp.Map)
	return nil
}

func runGetMap(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetMap(ctx, &gridv1alpha1.GetMapRequest{MapId: mapID})
	if err != nil {
		return fmt.Errorf("failed to get map: %w", err)
	}

	printMap(resp.Map)
	return nil
}

func runImportMap(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(snapshotIn) // #nosec G304 -- path supplied by the operator
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportMap(ctx, &gridv1alpha1.ImportMapRequest{
		Snapshot: string(data),
		MapId:    mapID,
	})
	if err != nil {
		return fmt.Errorf("failed to import map: %w", err)
	}

	fmt.Printf("Imported battle map\n\n")
	printMap(resp.Map)
	return nil
}

func runExportMap(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ExportMap(ctx, &gridv1alpha1.ExportMapRequest{MapId: mapID})
	if err != nil {
		return fmt.Errorf("failed to export map: %w", err)
	}

	fmt.Println(resp.Snapshot)
	return nil
}

func runDeleteMap(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteMap(ctx, &gridv1alpha1.DeleteMapRequest{MapId: mapID}); err != nil {
		return fmt.Errorf("failed to delete map: %w", err)
	}

	fmt.Printf("Deleted battle map %s\n", mapID)
	return nil
}

func runSetTerrain(_ *cobra.Command, _ []string) error {
	pos, err := parsePosition(tilePos)
	if err != nil {
		return err
	}

	client, cleanup, err := createGridClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetTerrain(ctx, &gridv1alpha1.SetTerrainRequest{
		MapId:    mapID,
		Position: pos,
		Terrain:  terrainType,
	})
	if err != nil {
		return fmt.Errorf("failed to set terrain: %w", err)
	}

	printMap(resp.Map)
	return nil
}
