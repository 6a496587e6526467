// Package platform provides the HTTP client for the vendor ESL platform API.
//
// The vendor platform owns the authoritative copy of all label records. This
// package exposes the single read operation the rest of the application needs:
// listing the label records the platform holds for a store. Writes (label
// registration, image pushes) go through the resync pipeline and are out of
// scope here.
//
// # Profiles
//
// Vendor installations differ in API layout between versions and products.
// A Profile captures the per-installation request paths; the configured
// profile name selects one via GetProfileByName.
//
// # Schema Tolerance
//
// Label listing responses are decoded loosely: both bare JSON arrays and
// object-wrapped collections (under a known set of collection keys) are
// accepted, and each record is kept as a raw map. Field-level interpretation
// happens downstream, where key aliases across platform versions are resolved.
//
// # Usage
//
//	client, err := platform.NewClient(cfg.Platform)
//	records, err := client.FetchLabels(ctx, "S001")
package platform
