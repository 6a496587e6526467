package cmd

import (
	"context"
	"fmt"
	"os"

	"esl-manager/core/config"
	"esl-manager/core/database"
	"esl-manager/core/logger"
	"esl-manager/core/storage"
	"esl-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool
var cleanFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on template storage and the label database",
	Long:  `Checks if the storage bucket has the required folder structure, every label model has its template, and the database schema matches the label models.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), false, false, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// templatesCmd represents the integrity templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Check template coverage and clean orphan previews",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check integrity of the label database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, templatesCmd, databaseCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	templatesCmd.Flags().BoolVar(&cleanFlag, "clean", false, "Remove orphan previews")
}

func runIntegrityChecks(ctx context.Context, onlyStructure, onlyTemplates, onlyDatabase bool) {
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

	// Create Storage Client
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Connect to Database (Optional). The storage checks work without it,
	// the database check reports its absence.
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, logg, db)
	runStructure := onlyStructure || (!onlyTemplates && !onlyDatabase)
	runTemplates := onlyTemplates || (!onlyStructure && !onlyDatabase)
	runDatabase := onlyDatabase || (!onlyStructure && !onlyTemplates)

	// Run Checks

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if onlyStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runTemplates {
		logg.Info("Checking template coverage...")
		report, err := svc.CheckTemplates(ctx)
		if err != nil {
			logg.Fatal("Template check failed", zap.Error(err))
		}

		if len(report.MissingTemplates) == 0 && len(report.UnregisteredTemplates) == 0 && len(report.OrphanPreviews) == 0 {
			logg.Info("Templates cover every label model.",
				zap.Int("models", report.TotalModels),
				zap.Int("templates", report.TotalTemplates))
		} else {
			if len(report.MissingTemplates) > 0 {
				logg.Warn("Missing templates detected", zap.Strings("missing", report.MissingTemplates))
			}
			if len(report.UnregisteredTemplates) > 0 {
				logg.Warn("Unregistered templates detected", zap.Strings("unregistered", report.UnregisteredTemplates))
			}
			if len(report.OrphanPreviews) > 0 {
				logg.Warn("Orphan previews detected", zap.Strings("orphans", report.OrphanPreviews))

				if onlyTemplates && cleanFlag {
					logg.Info("Removing orphan previews...")
					if err := svc.CleanOrphanPreviews(ctx, report.OrphanPreviews); err != nil {
						logg.Fatal("Failed to remove orphan previews", zap.Error(err))
					}
					logg.Info("Orphan previews removed successfully.")
				} else if onlyTemplates {
					logg.Info("Run with --clean to remove orphan previews.")
				}
			}
		}
	}

	if runDatabase {
		logg.Info("Checking label database schema...")
		report, err := svc.CheckDatabase()
		if err != nil {
			logg.Error("Database schema check failed", zap.Error(err))
		} else {
			if report.Matched {
				logg.Info("Database schema matches the label models.")
			} else {
				logg.Warn("Database schema mismatches found")
				for table, tblReport := range report.Tables {
					if tblReport.Status != "ok" {
						if len(tblReport.MissingColumns) > 0 {
							logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
						}
						if len(tblReport.TypeMismatches) > 0 {
							logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
						}
					}
				}
				for _, e := range report.Errors {
					logg.Error("Inspection Error", zap.String("error", e))
				}
			}
		}
	}
}
