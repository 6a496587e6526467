package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"esl-manager/core/drift"
	"esl-manager/core/platform"
	"esl-manager/feature/labels"
	"esl-manager/feature/labels/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatusReport is the scheduler and queue state returned by /sync/status.
type StatusReport struct {
	Running            bool  `json:"running"`
	InFlight           bool  `json:"in_flight"`
	PendingResyncTasks int64 `json:"pending_resync_tasks"`
}

// ErrLabelNotFound is returned by LabelDetail when no label matches the
// identifier.
var ErrLabelNotFound = errors.New("label not found")

// LabelDetailReport is the cross-system view of a single label, used by the
// detail endpoint and the label CLI command.
type LabelDetailReport struct {
	ID             uint   `json:"id"`
	StoreID        uint   `json:"store_id"`
	StoreCode      string `json:"store_code"`
	ExternalID     string `json:"external_id"`
	VirtualSpaceID string `json:"virtual_space_id"`
	SyncStatus     string `json:"sync_status"`

	// CorrelationKey is the key the verification pipeline would use to match
	// this label against the platform. Empty when the label carries neither
	// an external id nor a virtual space id.
	CorrelationKey string `json:"correlation_key"`

	// OnPlatform reports whether the platform returned a record with the
	// same correlation key.
	OnPlatform bool `json:"on_platform"`

	// IntegrityStatus is OK, DRIFT, WARNING or UNKNOWN.
	IntegrityStatus string `json:"integrity_status"`

	Notes []string `json:"notes,omitempty"`
}

// Service owns the verification pipeline on behalf of the HTTP surface and
// the composition root.
type Service struct {
	scheduler *drift.Scheduler
	repo      *labels.Repository
	gateway   *Gateway
	queue     *labels.TaskQueue
	logger    *zap.Logger
}

// NewService wires the verification pipeline against the label database and
// the vendor platform client.
func NewService(db *gorm.DB, client platform.Client, cfg drift.Config, logger *zap.Logger) *Service {
	repo := labels.NewRepository(db)
	queue := labels.NewTaskQueue(db, logger)
	gateway := NewGateway(client)
	scheduler := drift.NewScheduler(cfg, repo, gateway, queue, logger)

	return &Service{
		scheduler: scheduler,
		repo:      repo,
		gateway:   gateway,
		queue:     queue,
		logger:    logger,
	}
}

// Start launches periodic verification. A non-positive interval falls back
// to the configured one.
func (s *Service) Start(interval time.Duration) {
	s.scheduler.Start(interval)
}

// Stop cancels future verification runs. A run already in progress finishes.
func (s *Service) Stop() {
	s.scheduler.Stop()
}

// VerifyNow runs a synchronous verification across all sync-enabled stores
// and returns the per-store results.
func (s *Service) VerifyNow(ctx context.Context) ([]drift.VerificationResult, error) {
	return s.scheduler.VerifyNow(ctx)
}

// LabelDetail resolves a label by id, external id or virtual space id and
// checks its presence on the vendor platform.
func (s *Service) LabelDetail(ctx context.Context, identifier string) (*LabelDetailReport, error) {
	label, err := s.repo.GetLabel(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to look up label %s: %w", identifier, err)
	}
	if label == nil {
		return nil, fmt.Errorf("label %s: %w", identifier, ErrLabelNotFound)
	}

	report := &LabelDetailReport{
		ID:             label.ID,
		StoreID:        label.StoreID,
		ExternalID:     label.ExternalID,
		VirtualSpaceID: label.VirtualSpaceID,
		SyncStatus:     label.SyncStatus,
		CorrelationKey: drift.LocalKey(label.ToDrift()),
	}

	store, err := s.repo.GetStore(ctx, label.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up store %d: %w", label.StoreID, err)
	}
	if store == nil {
		report.IntegrityStatus = "WARNING"
		report.Notes = append(report.Notes, fmt.Sprintf("store %d does not exist", label.StoreID))
		return report, nil
	}
	report.StoreCode = store.Code

	if !store.SyncEnabled {
		report.Notes = append(report.Notes, "store is not sync-enabled, the label is never verified")
	}
	if report.CorrelationKey == "" {
		report.IntegrityStatus = "WARNING"
		report.Notes = append(report.Notes, "label has neither an external id nor a virtual space id and cannot be correlated")
		return report, nil
	}

	remote, err := s.gateway.FetchRemoteRecords(ctx, store.ToDrift())
	if err != nil {
		report.IntegrityStatus = "UNKNOWN"
		report.Notes = append(report.Notes, fmt.Sprintf("platform fetch failed: %v", err))
		return report, nil
	}

	for _, rec := range remote {
		if drift.RemoteKey(rec) == report.CorrelationKey {
			report.OnPlatform = true
			break
		}
	}

	switch {
	case label.SyncStatus != models.SyncStatusSynced:
		report.IntegrityStatus = "WARNING"
		report.Notes = append(report.Notes, fmt.Sprintf("label is %s locally and not expected on the platform yet", label.SyncStatus))
	case report.OnPlatform:
		report.IntegrityStatus = "OK"
	default:
		report.IntegrityStatus = "DRIFT"
		report.Notes = append(report.Notes, "label completed sync but the platform does not know its correlation key")
	}

	return report, nil
}

// Status reports the scheduler state and the resync queue depth.
func (s *Service) Status(ctx context.Context) (StatusReport, error) {
	pending, err := s.queue.CountPending(ctx)
	if err != nil {
		return StatusReport{}, err
	}

	return StatusReport{
		Running:            s.scheduler.Running(),
		InFlight:           s.scheduler.InFlight(),
		PendingResyncTasks: pending,
	}, nil
}
