//go:build ignore

// validate-maps scans stored battle maps and reports snapshots that no longer
// deserialize. With -delete it removes them after confirmation.
//
//	REDIS_URL=redis://localhost:6379 go run scripts/validate-maps.go [-delete]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/gridmap"
	"github.com/KirkDiggler/tactics-grid/internal/redis"
	"github.com/KirkDiggler/tactics-grid/internal/repositories/maps"
)

func main() {
	deleteBad := flag.Bool("delete", false, "offer to delete invalid maps")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redis.NewClientFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() {
		_ = client.Close()
	}()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning battle maps...")

	iter := client.Scan(ctx, 0, maps.KeyPrefix+"*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.HGet(ctx, key, maps.FieldSnapshot).Result()
		if err == redis.Nil {
			fmt.Printf("✗ %s has no snapshot field\n", key)
			badKeys = append(badKeys, key)
			continue
		}
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		m, err := gridmap.Deserialize(data)
		switch {
		case err == nil:
			if id := strings.TrimPrefix(key, maps.KeyPrefix); m.ID != id {
				fmt.Printf("! %s holds map %q\n", key, m.ID)
			}
		case gridmap.IsParseError(err):
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
		case gridmap.IsValidationError(err):
			fmt.Printf("✗ Invalid map in %s:\n", key)
			for field, msgs := range errors.GetFieldErrors(err) {
				fmt.Printf("    %s: %s\n", field, strings.Join(msgs, "; "))
			}
			badKeys = append(badKeys, key)
		default:
			fmt.Printf("✗ %s: %v\n", key, err)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d maps, found %d invalid\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 || !*deleteBad {
		return
	}

	fmt.Print("\nDo you want to DELETE these maps? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
