package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"esl-manager/core/config"
	"esl-manager/core/drift"
	"esl-manager/core/platform"
)

// Standalone probe for vendor API responses. Prints the raw field names each
// label record carries and the correlation key we derive from them, which is
// the first thing to check when a platform installation reports every label
// as missing.
func main() {
	storeCode := "S001"
	if len(os.Args) > 1 {
		storeCode = os.Args[1]
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := platform.NewClient(cfg.Platform)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	fmt.Printf("Profile: %s, base URL: %s\n", cfg.Platform.Profile, cfg.Platform.BaseURL)

	if err := client.Ping(ctx); err != nil {
		fmt.Printf("Ping failed: %v\n", err)
	} else {
		fmt.Println("Ping ok")
	}

	fmt.Printf("\n=== Fetching labels for store %s ===\n", storeCode)
	records, err := client.FetchLabels(ctx, storeCode)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Got %d records\n", len(records))

	emptyKeys := 0
	for i, rec := range records {
		key := drift.RemoteKey(drift.RemoteRecord(rec))
		if key == "" {
			emptyKeys++
		}

		// Only dump the first few records in full
		if i < 5 {
			fields := make([]string, 0, len(rec))
			for f := range rec {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			fmt.Printf("\nrecord %d: correlation key %q\n", i, key)
			fmt.Printf("  fields: %v\n", fields)
		}
	}

	fmt.Printf("\n%d of %d records derived no correlation key\n", emptyKeys, len(records))
}
