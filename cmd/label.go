package cmd

import (
	"context"
	"fmt"
	"os"

	"esl-manager/core/config"
	"esl-manager/core/database"
	"esl-manager/core/logger"
	"esl-manager/core/platform"
	"esl-manager/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// labelCmd represents the top-level label command
var labelCmd = &cobra.Command{
	Use:   "label [identifier]",
	Short: "View details and platform presence of a single label",
	Long:  `Resolves a label by id, external id or virtual space id and checks whether the vendor platform knows its correlation key.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLabelDetailCheck(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(labelCmd)
}

func runLabelDetailCheck(ctx context.Context, identifier string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to label database", zap.Error(err))
	}

	client, err := platform.NewClient(cfg.Platform)
	if err != nil {
		logg.Fatal("Failed to create platform client", zap.Error(err))
	}

	svc := sync.NewService(db, client, cfg.Drift, logg)

	logg.Info("Checking label...", zap.String("identifier", identifier))
	report, err := svc.LabelDetail(ctx, identifier)
	if err != nil {
		logg.Fatal("Label detail check failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Label Detail View ---")
	fmt.Printf("Query:            %s\n", identifier)
	fmt.Printf("ID:               %d\n", report.ID)
	fmt.Printf("Store:            %s (id %d)\n", report.StoreCode, report.StoreID)
	fmt.Printf("External ID:      %s\n", report.ExternalID)
	fmt.Printf("Virtual Space:    %s\n", report.VirtualSpaceID)
	fmt.Printf("Sync Status:      %s\n", report.SyncStatus)
	fmt.Println("-------------------------")
	fmt.Printf("Correlation Key:  %s\n", report.CorrelationKey)
	fmt.Printf("On Platform:      %v\n", report.OnPlatform)

	statusColor := "\033[32m" // Green
	if report.IntegrityStatus == "DRIFT" {
		statusColor = "\033[31m" // Red
	} else if report.IntegrityStatus != "OK" {
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	fmt.Printf("Integrity:        %s%s%s\n", statusColor, report.IntegrityStatus, resetColor)

	if len(report.Notes) > 0 {
		fmt.Println("\nNotes:")
		for _, n := range report.Notes {
			fmt.Printf("- %s\n", n)
		}
	}
	fmt.Println("-------------------------")
}
