package drift

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Detector compares the local synced record set of a store against the
// record set held by the vendor platform.
type Detector struct {
	repo       Repository
	gateway    Gateway
	localLimit int
	logger     *zap.Logger
}

// NewDetector creates a detector. localLimit caps the local fetch per store;
// zero or negative falls back to the default.
func NewDetector(repo Repository, gateway Gateway, localLimit int, logger *zap.Logger) *Detector {
	if localLimit <= 0 {
		localLimit = DefaultLocalLimit
	}
	return &Detector{
		repo:       repo,
		gateway:    gateway,
		localLimit: localLimit,
		logger:     logger,
	}
}

// Verify computes the drift result for one store.
//
// A failed remote fetch yields a non-verified result with Error set and both
// diff lists empty: an unreachable platform is a connectivity problem, not
// drift, and must not trigger resync work. A repository failure is returned
// as an error for the caller to isolate.
func (d *Detector) Verify(ctx context.Context, store Store, entityType string) (VerificationResult, error) {
	result := VerificationResult{
		StoreID:         store.ID,
		StoreCode:       store.Code,
		StoreName:       store.Name,
		EntityType:      entityType,
		MissingInRemote: []uint{},
		ExtraInRemote:   []string{},
	}

	local, err := d.repo.ListSyncedRecords(ctx, store.ID, d.localLimit)
	if err != nil {
		return result, fmt.Errorf("failed to list synced records for store %s: %w", store.Code, err)
	}
	result.TotalLocal = len(local)

	remote, err := d.gateway.FetchRemoteRecords(ctx, store)
	if err != nil {
		d.logger.Error("Remote fetch failed, store not verified",
			zap.String("store", store.Code),
			zap.Error(err))
		result.Error = err.Error()
		result.Verified = false
		return result, nil
	}
	result.TotalRemote = len(remote)

	// Index both sides by correlation key. Records without a key are
	// excluded from comparison on either side.
	localByKey := make(map[string]LocalRecord, len(local))
	for _, rec := range local {
		if key := LocalKey(rec); key != "" {
			localByKey[key] = rec
		}
	}

	remoteKeys := make(map[string]struct{}, len(remote))
	for _, rec := range remote {
		if key := RemoteKey(rec); key != "" {
			remoteKeys[key] = struct{}{}
		}
	}

	for key, rec := range localByKey {
		if _, ok := remoteKeys[key]; !ok {
			result.MissingInRemote = append(result.MissingInRemote, rec.ID)
		}
	}
	for key := range remoteKeys {
		if _, ok := localByKey[key]; !ok {
			result.ExtraInRemote = append(result.ExtraInRemote, key)
		}
	}

	// Sort diffs for deterministic logs and API responses
	sort.Slice(result.MissingInRemote, func(i, j int) bool {
		return result.MissingInRemote[i] < result.MissingInRemote[j]
	})
	sort.Strings(result.ExtraInRemote)

	// Extra remote records never affect the verdict; they belong to other
	// tenants or were registered directly on the vendor side.
	result.Verified = len(result.MissingInRemote) == 0

	return result, nil
}
