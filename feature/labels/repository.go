package labels

import (
	"context"
	"fmt"

	"esl-manager/core/drift"
	"esl-manager/feature/labels/models"

	"gorm.io/gorm"
)

// Repository reads store and label projections for the verification engine.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new label repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListSyncEnabledStores returns every store with synchronization enabled,
// oldest first.
func (r *Repository) ListSyncEnabledStores(ctx context.Context) ([]drift.Store, error) {
	var rows []models.Store
	err := r.db.WithContext(ctx).
		Where("sync_enabled = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync-enabled stores: %w", err)
	}

	stores := make([]drift.Store, 0, len(rows))
	for _, row := range rows {
		stores = append(stores, row.ToDrift())
	}
	return stores, nil
}

// GetLabel fetches a single label by numeric id, external id, or virtual
// space id. Returns nil without error when no label matches.
func (r *Repository) GetLabel(ctx context.Context, identifier string) (*models.Label, error) {
	var row models.Label
	found := false

	// Try to look up by ID if identifier is numeric
	var id int
	if _, err := fmt.Sscanf(identifier, "%d", &id); err == nil && id > 0 {
		if err := r.db.WithContext(ctx).First(&row, id).Error; err == nil {
			found = true
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	// If not found by ID, try the correlation identifiers
	if !found {
		err := r.db.WithContext(ctx).
			Where("external_id = ? OR virtual_space_id = ?", identifier, identifier).
			First(&row).Error
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}

	return &row, nil
}

// GetStore fetches a single store by id. Returns nil without error when the
// store does not exist.
func (r *Repository) GetStore(ctx context.Context, id uint) (*models.Store, error) {
	var row models.Store
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListSyncedRecords returns up to limit labels of the store that completed
// their last sync, oldest first. Labels still pending or failed are not
// expected on the vendor platform and stay out of the projection.
func (r *Repository) ListSyncedRecords(ctx context.Context, storeID uint, limit int) ([]drift.LocalRecord, error) {
	var rows []models.Label
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND sync_status = ?", storeID, models.SyncStatusSynced).
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list synced labels for store %d: %w", storeID, err)
	}

	records := make([]drift.LocalRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToDrift())
	}
	return records, nil
}
