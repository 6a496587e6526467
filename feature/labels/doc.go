// Package labels owns the locally persisted ESL state: stores, label records
// and the resync task queue.
//
// The local database is the authoritative source for what each store's labels
// should display. The verification engine in core/drift reads store and label
// projections through this package's Repository and submits corrective work
// through its TaskQueue.
//
// # Components
//
//   - models: GORM schemas for the 'stores', 'labels' and 'resync_tasks' tables.
//   - Repository: read-side projections consumed by the verification engine.
//   - TaskQueue: persisted resync queue that absorbs duplicate submissions.
//
// The worker that drains resync_tasks runs as a separate process; this
// package only enqueues.
package labels
