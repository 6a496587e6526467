package checks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"esl-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"
)

// ManifestObjectName is the bucket key of the template manifest.
const ManifestObjectName = "templates/manifest.json"

// DefaultManifestTTL is how long a loaded manifest stays fresh.
const DefaultManifestTTL = 5 * time.Minute

// LabelModel is one display model named by the template manifest.
type LabelModel struct {
	// Name is the vendor's model identifier, e.g. "ST-GR16000".
	Name string `json:"name"`
	// Width and Height are the display dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TemplateObject returns the bucket key of the model's layout template.
func (m LabelModel) TemplateObject() string {
	return "templates/" + m.Name + ".json"
}

// Manifest names every label model the fleet uses. Each model must have a
// layout template at templates/<name>.json.
type Manifest struct {
	Models []LabelModel `json:"models"`
}

// cachedManifest is a loaded manifest with freshness bookkeeping.
type cachedManifest struct {
	manifest *Manifest
	built    time.Time
	ttl      time.Duration
}

// isExpired returns true if this cached manifest has expired based on its TTL.
func (c *cachedManifest) isExpired() bool {
	if c.ttl == 0 {
		return true // no caching
	}
	return time.Since(c.built) > c.ttl
}

// manifestStore holds cached manifests keyed by bucket.
type manifestStore struct {
	mu     sync.RWMutex
	caches map[string]*cachedManifest
	sf     singleflight.Group
}

// globalManifestStore is the singleton store for all manifest loads.
var globalManifestStore = &manifestStore{
	caches: make(map[string]*cachedManifest),
}

// LoadManifest fetches and decodes the template manifest from the bucket,
// bypassing the cache.
func LoadManifest(ctx context.Context, client storage.Client, bucket string) (*Manifest, error) {
	obj, err := client.GetObject(ctx, bucket, ManifestObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template manifest: %w", err)
	}
	defer obj.Close()

	var manifest Manifest
	if err := json.NewDecoder(obj).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to decode template manifest: %w", err)
	}
	return &manifest, nil
}

// GetOrLoadManifest returns the cached manifest for the bucket, loading it
// when absent or expired. Uses singleflight to prevent load stampedes.
func GetOrLoadManifest(ctx context.Context, client storage.Client, bucket string, ttl time.Duration) (*Manifest, error) {
	// Fast path: check if the cache exists and is fresh
	globalManifestStore.mu.RLock()
	cached, exists := globalManifestStore.caches[bucket]
	globalManifestStore.mu.RUnlock()

	if exists && !cached.isExpired() {
		return cached.manifest, nil
	}

	// Slow path: load through singleflight
	result, err, _ := globalManifestStore.sf.Do(bucket, func() (interface{}, error) {
		// Double-check after winning the flight
		globalManifestStore.mu.RLock()
		cached, exists := globalManifestStore.caches[bucket]
		globalManifestStore.mu.RUnlock()

		if exists && !cached.isExpired() {
			return cached.manifest, nil
		}

		manifest, err := LoadManifest(ctx, client, bucket)
		if err != nil {
			return nil, err
		}

		globalManifestStore.mu.Lock()
		globalManifestStore.caches[bucket] = &cachedManifest{
			manifest: manifest,
			built:    time.Now(),
			ttl:      ttl,
		}
		globalManifestStore.mu.Unlock()

		return manifest, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Manifest), nil
}

// InvalidateManifest removes the cached manifest for the bucket. This is
// useful for testing or forcing a reload.
func InvalidateManifest(bucket string) {
	globalManifestStore.mu.Lock()
	delete(globalManifestStore.caches, bucket)
	globalManifestStore.mu.Unlock()
}
