package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"esl-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// TemplateReport contains the results of a template coverage check.
type TemplateReport struct {
	TotalModels           int      `json:"total_models"`
	TotalTemplates        int      `json:"total_templates"`
	MissingTemplates      []string `json:"missing_templates"`
	UnregisteredTemplates []string `json:"unregistered_templates"`
	OrphanPreviews        []string `json:"orphan_previews"`
	GeneratedAt           string   `json:"generated_at"`
	ExecutionTime         string   `json:"execution_time"`
}

// CheckTemplates verifies that every model in the manifest has its layout
// template, and reports templates and previews that no model claims.
// Previews are stored as previews/<model>/<object>.
func CheckTemplates(ctx context.Context, client storage.Client, bucket string, manifest *Manifest) (*TemplateReport, error) {
	start := time.Now()

	report := &TemplateReport{
		TotalModels:           len(manifest.Models),
		MissingTemplates:      []string{},
		UnregisteredTemplates: []string{},
		OrphanPreviews:        []string{},
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	// Index the stored templates
	stored := make(map[string]struct{})
	opts := minio.ListObjectsOptions{Prefix: "templates/", Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") || obj.Key == ManifestObjectName {
			continue
		}
		stored[obj.Key] = struct{}{}
	}
	report.TotalTemplates = len(stored)

	// Every manifest model needs its template object
	wanted := make(map[string]struct{}, len(manifest.Models))
	names := make(map[string]struct{}, len(manifest.Models))
	for _, model := range manifest.Models {
		key := model.TemplateObject()
		wanted[key] = struct{}{}
		names[model.Name] = struct{}{}
		if _, ok := stored[key]; !ok {
			report.MissingTemplates = append(report.MissingTemplates, model.Name)
		}
	}

	// Templates nothing in the manifest claims
	for key := range stored {
		if _, ok := wanted[key]; !ok {
			report.UnregisteredTemplates = append(report.UnregisteredTemplates, key)
		}
	}

	// Previews for models the manifest no longer names are orphans
	previewOpts := minio.ListObjectsOptions{Prefix: "previews/", Recursive: true}
	for obj := range client.ListObjects(ctx, bucket, previewOpts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list previews: %w", obj.Err)
		}
		modelName, _, found := strings.Cut(strings.TrimPrefix(obj.Key, "previews/"), "/")
		if !found || modelName == "" {
			continue // folder markers and stray flat files
		}
		if _, ok := names[modelName]; !ok {
			report.OrphanPreviews = append(report.OrphanPreviews, obj.Key)
		}
	}

	sort.Strings(report.MissingTemplates)
	sort.Strings(report.UnregisteredTemplates)
	sort.Strings(report.OrphanPreviews)

	report.GeneratedAt = start.UTC().Format(time.RFC3339)
	report.ExecutionTime = time.Since(start).String()
	return report, nil
}

// CleanOrphanPreviews removes the given preview objects from the bucket.
func CleanOrphanPreviews(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, orphans []string) error {
	if len(orphans) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(orphans))
	for _, key := range orphans {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	for removeErr := range client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if removeErr.Err != nil {
			logger.Error("Failed to remove orphan preview",
				zap.String("object", removeErr.ObjectName),
				zap.Error(removeErr.Err))
			return fmt.Errorf("failed to remove orphan preview %s: %w", removeErr.ObjectName, removeErr.Err)
		}
	}

	logger.Info("Removed orphan previews", zap.Int("count", len(orphans)))
	return nil
}
