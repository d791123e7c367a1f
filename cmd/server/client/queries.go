package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
)

var (
	fromPos      string
	toPos        string
	budget       int32
	movementType string
	unitSpecs    []string
	originSpecs  []string
	minRange     int32
	maxRange     int32
	team         string
	persist      bool
)

var findPathCmd = &cobra.Command{
	Use:   "find-path",
	Short: "Find the cheapest path between two tiles",
	Long: `Find the cheapest path within a movement budget. Units are given as
id:team:x,y:movement[:movement_type], for example:

  find-path --map-id m1 --from 0,2 --to 6,2 --budget 8 --unit raider:enemy:5,1:3`,
	RunE: runFindPath,
}

var movementRangeCmd = &cobra.Command{
	Use:   "movement-range",
	Short: "List the tiles a unit can end its move on",
	RunE:  runMovementRange,
}

var attackRangeCmd = &cobra.Command{
	Use:   "attack-range",
	Short: "List the tiles within an attack band of the origins",
	RunE:  runAttackRange,
}

var dangerZoneCmd = &cobra.Command{
	Use:   "danger-zone",
	Short: "List the tiles enemy units can move to or strike",
	RunE:  runDangerZone,
}

var lineOfSightCmd = &cobra.Command{
	Use:   "line-of-sight",
	Short: "Check whether one tile can see another",
	RunE:  runLineOfSight,
}

var fogCmd = &cobra.Command{
	Use:   "fog",
	Short: "Compute a team's fog-of-war view",
	RunE:  runFog,
}

func init() {
	for _, cmd := range []*cobra.Command{
		findPathCmd, movementRangeCmd, attackRangeCmd, dangerZoneCmd, lineOfSightCmd, fogCmd,
	} {
		cmd.Flags().StringVar(&mapID, "map-id", "", "Map ID (required)")
		_ = cmd.MarkFlagRequired("map-id") // nolint:errcheck // safe to ignore in init
	}

	findPathCmd.Flags().StringVar(&fromPos, "from", "", "Start position as x,y (required)")
	findPathCmd.Flags().StringVar(&toPos, "to", "", "End position as x,y (required)")
	findPathCmd.Flags().Int32Var(&budget, "budget", 5, "Movement budget")
	findPathCmd.Flags().StringVar(&movementType, "movement-type", "foot", "foot, mounted, armored or flying")
	findPathCmd.Flags().StringSliceVar(&unitSpecs, "unit", nil, "Unit on the board")
	_ = findPathCmd.MarkFlagRequired("from") // nolint:errcheck // safe to ignore in init
	_ = findPathCmd.MarkFlagRequired("to")   // nolint:errcheck // safe to ignore in init

	movementRangeCmd.Flags().StringVar(&fromPos, "from", "", "Start position as x,y (required)")
	movementRangeCmd.Flags().Int32Var(&budget, "movement", 5, "Movement points")
	movementRangeCmd.Flags().StringVar(&movementType, "movement-type", "foot", "foot, mounted, armored or flying")
	movementRangeCmd.Flags().StringSliceVar(&unitSpecs, "unit", nil, "Unit on the board")
	_ = movementRangeCmd.MarkFlagRequired("from") // nolint:errcheck // safe to ignore in init

	attackRangeCmd.Flags().StringSliceVar(&originSpecs, "origin", nil, "Origin position as x,y")
	attackRangeCmd.Flags().Int32Var(&minRange, "min", 1, "Minimum range")
	attackRangeCmd.Flags().Int32Var(&maxRange, "max", 1, "Maximum range")

	dangerZoneCmd.Flags().StringSliceVar(&unitSpecs, "enemy", nil, "Enemy unit")

	lineOfSightCmd.Flags().StringVar(&fromPos, "from", "", "Viewer position as x,y (required)")
	lineOfSightCmd.Flags().StringVar(&toPos, "to", "", "Target position as x,y (required)")
	_ = lineOfSightCmd.MarkFlagRequired("from") // nolint:errcheck // safe to ignore in init
	_ = lineOfSightCmd.MarkFlagRequired("to")   // nolint:errcheck // safe to ignore in init

	fogCmd.Flags().StringVar(&team, "team", "", "Viewing team (required)")
	fogCmd.Flags().StringSliceVar(&unitSpecs, "unit", nil, "Unit on the board")
	fogCmd.Flags().BoolVar(&persist, "persist", false, "Store the fogged map")
	_ = fogCmd.MarkFlagRequired("team") // nolint:errcheck // safe to ignore in init
}

func runFindPath(_ *cobra.Command, _ []string) error {
	start, err := parsePosition(fromPos)
	if err != nil {
		return err
	}
	end, err := parsePosition(toPos)
	if err != nil {
		return err
	}
	units, err := parseUnits(unitSpecs)
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

	resp, err := client.FindPath(ctx, &gridv1alpha1.FindPathRequest{
		MapId:          mapID,
		Start:          start,
		End:            end,
		MovementBudget: budget,
		MovementType:   movementType,
		Units:          units,
	})
	if err != nil {
		return fmt.Errorf("failed to find path: %w", err)
	}

	if !resp.Found {
		fmt.Printf("No path within a budget of %d\n", budget)
		return nil
	}

	fmt.Printf("Path (cost %d, %d steps):\n", resp.Cost, len(resp.Path)-1)
	fmt.Printf("  %s\n", formatPositions(resp.Path))
	return nil
}

func runMovementRange(_ *cobra.Command, _ []string) error {
	start, err := parsePosition(fromPos)
	if err != nil {
		return err
	}
	units, err := parseUnits(unitSpecs)
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

	resp, err := client.GetMovementRange(ctx, &gridv1alpha1.GetMovementRangeRequest{
		MapId:        mapID,
		Start:        start,
		Movement:     budget,
		MovementType: movementType,
		Units:        units,
	})
	if err != nil {
		return fmt.Errorf("failed to get movement range: %w", err)
	}

	fmt.Printf("Reachable tiles (%d):\n  %s\n", len(resp.Positions), formatPositions(resp.Positions))
	return nil
}

func runAttackRange(_ *cobra.Command, _ []string) error {
	origins, err := parsePositions(originSpecs)
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

	resp, err := client.GetAttackRange(ctx, &gridv1alpha1.GetAttackRangeRequest{
		MapId:    mapID,
		Origins:  origins,
		MinRange: minRange,
		MaxRange: maxRange,
	})
	if err != nil {
		return fmt.Errorf("failed to get attack range: %w", err)
	}

	fmt.Printf("Tiles in range %d-%d (%d):\n  %s\n", minRange, maxRange, len(resp.Positions), formatPositions(resp.Positions))
	return nil
}

func runDangerZone(_ *cobra.Command, _ []string) error {
	enemies, err := parseUnits(unitSpecs)
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

	resp, err := client.GetDangerZone(ctx, &gridv1alpha1.GetDangerZoneRequest{
		MapId:   mapID,
		Enemies: enemies,
	})
	if err != nil {
		return fmt.Errorf("failed to get danger zone: %w", err)
	}

	fmt.Printf("Threatened tiles (%d):\n  %s\n", len(resp.Positions), formatPositions(resp.Positions))
	return nil
}

func runLineOfSight(_ *cobra.Command, _ []string) error {
	from, err := parsePosition(fromPos)
	if err != nil {
		return err
	}
	to, err := parsePosition(toPos)
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

	resp, err := client.CheckLineOfSight(ctx, &gridv1alpha1.CheckLineOfSightRequest{
		MapId: mapID,
		From:  from,
		To:    to,
	})
	if err != nil {
		return fmt.Errorf("failed to check line of sight: %w", err)
	}

	if resp.Visible {
		fmt.Printf("(%d,%d) can see (%d,%d)\n", from.X, from.Y, to.X, to.Y)
	} else {
		fmt.Printf("(%d,%d) cannot see (%d,%d)\n", from.X, from.Y, to.X, to.Y)
	}
	return nil
}

func runFog(_ *cobra.Command, _ []string) error {
	units, err := parseUnits(unitSpecs)
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

	resp, err := client.ApplyFogOfWar(ctx, &gridv1alpha1.ApplyFogOfWarRequest{
		MapId:   mapID,
		Team:    team,
		Units:   units,
		Persist: persist,
	})
	if err != nil {
		return fmt.Errorf("failed to apply fog of war: %w", err)
	}

	fmt.Printf("Visible to %s (%d):\n  %s\n", team, len(resp.Visible), formatPositions(resp.Visible))
	return nil
}
