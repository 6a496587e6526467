package models

import (
	"time"

	"esl-manager/core/drift"
)

// Label sync lifecycle states.
const (
	SyncStatusSynced  = "SYNCED"
	SyncStatusPending = "PENDING"
	SyncStatusFailed  = "FAILED"
)

// Resync task lifecycle states. The drain worker owns every transition out
// of pending.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)

// Store is a physical retail location registered with the vendor platform.
type Store struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	Code        string `gorm:"column:code;type:varchar(32);uniqueIndex"`
	Name        string `gorm:"column:name;type:varchar(128)"`
	CompanyID   uint   `gorm:"column:company_id;index"`
	// No column default here: GORM would skip an explicit false on insert
	// and the database default would win.
	SyncEnabled bool `gorm:"column:sync_enabled;type:tinyint(1)"`
}

// TableName overrides the table name for Store.
func (Store) TableName() string {
	return "stores"
}

// ToDrift projects the row into the verification engine's store type.
func (s Store) ToDrift() drift.Store {
	return drift.Store{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		CompanyID:   s.CompanyID,
		SyncEnabled: s.SyncEnabled,
	}
}

// Label is one electronic shelf label binding for a store. ExternalID is the
// vendor platform's article id; VirtualSpaceID is the internal placement id
// used before the vendor assigns one.
type Label struct {
	ID             uint      `gorm:"primaryKey;column:id"`
	StoreID        uint      `gorm:"column:store_id;index"`
	ExternalID     string    `gorm:"column:external_id;type:varchar(64);default:''"`
	VirtualSpaceID string    `gorm:"column:virtual_space_id;type:varchar(64);default:''"`
	SyncStatus     string    `gorm:"column:sync_status;type:varchar(16);index;default:PENDING"`
	Payload        string    `gorm:"column:payload;type:text"` // article document as last pushed to the vendor
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for Label.
func (Label) TableName() string {
	return "labels"
}

// ToDrift projects the row into the verification engine's local record type.
func (l Label) ToDrift() drift.LocalRecord {
	return drift.LocalRecord{
		ID:             l.ID,
		ExternalID:     l.ExternalID,
		VirtualSpaceID: l.VirtualSpaceID,
	}
}

// ResyncTask is one queued request to re-push a local record to the vendor
// platform.
type ResyncTask struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)"` // uuid
	StoreID    uint      `gorm:"column:store_id;index"`
	EntityType string    `gorm:"column:entity_type;type:varchar(16)"`
	EntityID   uint      `gorm:"column:entity_id"`
	Origin     string    `gorm:"column:origin;type:varchar(16)"`
	Reason     string    `gorm:"column:reason;type:varchar(255)"`
	Status     string    `gorm:"column:status;type:varchar(16);index;default:pending"`
	Attempts   int       `gorm:"column:attempts;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for ResyncTask.
func (ResyncTask) TableName() string {
	return "resync_tasks"
}
