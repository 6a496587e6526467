package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"esl-manager/core/config"
	"esl-manager/core/database"
	"esl-manager/core/logger"
	"esl-manager/core/platform"
	"esl-manager/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd runs the drift verification pipeline once and exits.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify all stores against the vendor platform once",
	Long: `Runs the label drift verification pipeline one time for every sync-enabled
store. Drifted labels are queued for resync, exactly as in a scheduled run.
Outputs metrics by default or a detailed JSON report with the --json flag.

Examples:
  # Verify and print per-store metrics
  esl-manager verify

  # Verify and save the full per-store results as JSON
  esl-manager verify --json

  # Verify everything but only report one store
  esl-manager verify --store S001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		storeFilter, _ := cmd.Flags().GetString("store")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		// Connect to database (required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		// Create platform client
		client, err := platform.NewClient(cfg.Platform)
		if err != nil {
			return fmt.Errorf("failed to create platform client: %w", err)
		}

		svc := sync.NewService(db, client, cfg.Drift, logg)

		logg.Info("Verifying stores against the vendor platform...")
		results, err := svc.VerifyNow(ctx)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		// The run itself always covers every store; --store only narrows the report.
		if storeFilter != "" {
			filtered := results[:0:0]
			for _, r := range results {
				if r.StoreCode == storeFilter {
					filtered = append(filtered, r)
				}
			}
			results = filtered
		}

		// Calculate metrics
		var verified, drifted, failed, missing int
		for _, r := range results {
			switch {
			case r.Error != "":
				failed++
			case r.Verified:
				verified++
			default:
				drifted++
			}
			missing += len(r.MissingInRemote)
		}

		if jsonOutput {
			filename := fmt.Sprintf("verify_labels_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("stores", len(results)))
		}

		executionTime := time.Since(startTime)

		// Always display metrics
		fmt.Println("\n=== Label Verification Metrics ===")
		fmt.Printf("Stores Checked: %d\n", len(results))
		fmt.Printf("Verified: %d\n", verified)
		fmt.Printf("Drifted: %d\n", drifted)
		fmt.Printf("Failed: %d\n", failed)
		fmt.Printf("Missing In Remote: %d\n", missing)
		fmt.Printf("Execution Time: %s\n", executionTime.String())

		logg.Info("Verification completed",
			zap.Int("stores", len(results)),
			zap.Int("verified", verified),
			zap.Int("drifted", drifted),
			zap.Int("failed", failed),
			zap.Int("missing_in_remote", missing),
			zap.Duration("execution_time", executionTime),
		)

		return nil
	},
}

func init() {
	verifyCmd.Flags().Bool("json", false, "Save the per-store results as a JSON file")
	verifyCmd.Flags().String("store", "", "Only report the store with this code")
	RootCmd.AddCommand(verifyCmd)
}
