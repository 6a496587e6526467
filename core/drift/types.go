package drift

// EntityLabel is the entity type verified by the drift job. Further entity
// types (e.g. templates) plug into the same pipeline.
const EntityLabel = "LABEL"

// Origins distinguish why a resync job was queued.
const (
	// OriginDrift marks work queued by the drift verification job.
	OriginDrift = "drift"
	// OriginInitial marks work queued by the initial store synchronization.
	OriginInitial = "initial"
)

// Store is the minimal projection of a store the verification pipeline needs.
type Store struct {
	// ID is the local database id.
	ID uint `json:"id"`

	// Code is the store code registered on the vendor platform.
	Code string `json:"code"`

	// Name is the display name of the store.
	Name string `json:"name"`

	// CompanyID is the owning company.
	CompanyID uint `json:"company_id"`

	// SyncEnabled indicates whether the store participates in verification.
	SyncEnabled bool `json:"sync_enabled"`
}

// LocalRecord is the minimal projection of a locally persisted entity that
// has reached the SYNCED state. Non-synced records never enter the pipeline.
type LocalRecord struct {
	// ID is the local database id, used to address resync work.
	ID uint

	// ExternalID is the id assigned by the vendor platform, if known.
	ExternalID string

	// VirtualSpaceID is the pre-registration placement id, used as the
	// correlation fallback for records without an external id.
	VirtualSpaceID string
}

// RemoteRecord is a raw vendor platform record. Field names vary between
// platform versions, so interpretation goes through the key alias list.
type RemoteRecord map[string]any

// VerificationResult is the outcome of verifying a single store.
// Results are ephemeral: they are logged and returned to manual callers,
// never persisted.
type VerificationResult struct {
	// StoreID is the local database id of the verified store.
	StoreID uint `json:"store_id"`

	// StoreCode is the store code registered on the vendor platform.
	StoreCode string `json:"store_code"`

	// StoreName is the display name of the verified store.
	StoreName string `json:"store_name"`

	// EntityType is the verified entity type (e.g. LABEL).
	EntityType string `json:"entity_type"`

	// TotalLocal is the number of local synced records considered.
	TotalLocal int `json:"total_local"`

	// TotalRemote is the number of records the platform returned.
	TotalRemote int `json:"total_remote"`

	// MissingInRemote lists local record ids the platform does not know.
	// This is the drift that triggers corrective resync work.
	MissingInRemote []uint `json:"missing_in_remote"`

	// ExtraInRemote lists remote correlation keys with no local counterpart.
	// Informational only; it never affects Verified.
	ExtraInRemote []string `json:"extra_in_remote"`

	// Verified is true exactly when MissingInRemote is empty.
	Verified bool `json:"verified"`

	// Error carries the failure description when the store could not be
	// verified (e.g. the platform was unreachable).
	Error string `json:"error,omitempty"`
}

// ResyncJob is a unit of corrective work submitted to the resync queue.
type ResyncJob struct {
	// StoreID is the store the entity belongs to.
	StoreID uint `json:"store_id"`

	// EntityType is the kind of entity to resync (e.g. LABEL).
	EntityType string `json:"entity_type"`

	// EntityID is the local database id of the entity.
	EntityID uint `json:"entity_id"`

	// Origin records why the job was queued (drift, initial).
	Origin string `json:"origin"`

	// Reason is a human-readable explanation for operators.
	Reason string `json:"reason"`
}
