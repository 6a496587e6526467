package drift

import (
	"context"

	"go.uber.org/zap"
)

// Queuer converts missing record ids into capped resync submissions.
type Queuer struct {
	queue  Queue
	limit  int
	logger *zap.Logger
}

// NewQueuer creates a queuer. limit caps submissions per store and run;
// zero or negative falls back to the default.
func NewQueuer(queue Queue, limit int, logger *zap.Logger) *Queuer {
	if limit <= 0 {
		limit = DefaultResyncLimit
	}
	return &Queuer{
		queue:  queue,
		limit:  limit,
		logger: logger,
	}
}

// Submit queues resync jobs for up to the configured limit of missing ids
// and returns how many submissions succeeded. Each failure is logged and
// skipped individually, so one bad enqueue never drops the rest of the
// batch. Ids beyond the limit are left for the next run, which re-detects
// whatever is still missing.
func (q *Queuer) Submit(ctx context.Context, store Store, entityType string, missing []uint) int {
	if len(missing) == 0 {
		return 0
	}

	batch := missing
	if len(batch) > q.limit {
		q.logger.Warn("Missing records exceed resync limit, deferring remainder",
			zap.String("store", store.Code),
			zap.Int("missing", len(missing)),
			zap.Int("limit", q.limit))
		batch = batch[:q.limit]
	}

	queued := 0
	for _, id := range batch {
		job := ResyncJob{
			StoreID:    store.ID,
			EntityType: entityType,
			EntityID:   id,
			Origin:     OriginDrift,
			Reason:     "missing on vendor platform",
		}

		if err := q.queue.Enqueue(ctx, job); err != nil {
			q.logger.Error("Failed to queue resync",
				zap.String("store", store.Code),
				zap.Uint("entity_id", id),
				zap.Error(err))
			continue
		}
		queued++
	}

	return queued
}
