package integrity

import (
	"context"
	"time"

	"esl-manager/core/storage"
	"esl-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client      storage.Client
	bucket      string
	logger      *zap.Logger
	db          *gorm.DB
	manifestTTL time.Duration
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:      client,
		bucket:      bucket,
		logger:      logger,
		db:          db,
		manifestTTL: checks.DefaultManifestTTL,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckTemplates verifies template coverage against the manifest. The
// manifest comes from the TTL cache, so repeated checks share one load.
func (s *Service) CheckTemplates(ctx context.Context) (*checks.TemplateReport, error) {
	manifest, err := checks.GetOrLoadManifest(ctx, s.client, s.bucket, s.manifestTTL)
	if err != nil {
		return nil, err
	}
	return checks.CheckTemplates(ctx, s.client, s.bucket, manifest)
}

// CleanOrphanPreviews removes previews that no manifest model claims.
func (s *Service) CleanOrphanPreviews(ctx context.Context, orphans []string) error {
	return checks.CleanOrphanPreviews(ctx, s.client, s.bucket, s.logger, orphans)
}

// CheckDatabase verifies the label database schema.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabaseIntegrity(s.db)
}
