package labels

import (
	"context"
	"fmt"

	"esl-manager/core/drift"
	"esl-manager/feature/labels/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskQueue persists resync submissions as pending rows in resync_tasks.
// An existing pending row for the same store, entity type and entity id
// absorbs further submissions, so repeated verification runs do not pile up
// work for the same record.
type TaskQueue struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTaskQueue creates a new resync task queue.
func NewTaskQueue(db *gorm.DB, logger *zap.Logger) *TaskQueue {
	return &TaskQueue{db: db, logger: logger}
}

// Enqueue records a resync task for the job unless an identical task is
// already pending. The existence check and the insert are separate
// statements, so a duplicate can slip in between them under concurrent
// submissions; the drain worker treats such rows as one unit of work.
func (q *TaskQueue) Enqueue(ctx context.Context, job drift.ResyncJob) error {
	var pending int64
	err := q.db.WithContext(ctx).Model(&models.ResyncTask{}).
		Where("store_id = ? AND entity_type = ? AND entity_id = ? AND status = ?",
			job.StoreID, job.EntityType, job.EntityID, models.TaskStatusPending).
		Count(&pending).Error
	if err != nil {
		return fmt.Errorf("failed to check for pending resync task: %w", err)
	}
	if pending > 0 {
		q.logger.Debug("Resync task already pending, absorbing duplicate",
			zap.Uint("store_id", job.StoreID),
			zap.Uint("entity_id", job.EntityID))
		return nil
	}

	task := models.ResyncTask{
		ID:         uuid.NewString(),
		StoreID:    job.StoreID,
		EntityType: job.EntityType,
		EntityID:   job.EntityID,
		Origin:     job.Origin,
		Reason:     job.Reason,
		Status:     models.TaskStatusPending,
	}
	if err := q.db.WithContext(ctx).Create(&task).Error; err != nil {
		return fmt.Errorf("failed to enqueue resync task: %w", err)
	}
	return nil
}

// CountPending returns the number of resync tasks waiting to be drained.
func (q *TaskQueue) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.WithContext(ctx).Model(&models.ResyncTask{}).
		Where("status = ?", models.TaskStatusPending).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending resync tasks: %w", err)
	}
	return count, nil
}
