package drift

import "context"

// Repository provides read access to the locally persisted sync state.
type Repository interface {
	// ListSyncEnabledStores returns every store with sync enabled,
	// in a stable order.
	ListSyncEnabledStores(ctx context.Context) ([]Store, error)

	// ListSyncedRecords returns up to limit records of the store that are
	// in the SYNCED state, oldest first.
	ListSyncedRecords(ctx context.Context, storeID uint, limit int) ([]LocalRecord, error)
}

// Gateway reads the authoritative record set from the vendor platform.
type Gateway interface {
	// FetchRemoteRecords lists the records the platform holds for a store.
	// Errors cover both transport failures and vendor-side rejections.
	FetchRemoteRecords(ctx context.Context, store Store) ([]RemoteRecord, error)
}

// Queue accepts corrective resync work. Implementations must tolerate
// duplicate submissions for the same entity across runs, since unresolved
// drift is re-detected every tick.
type Queue interface {
	Enqueue(ctx context.Context, job ResyncJob) error
}
