// Package sync exposes the label verification pipeline to operators.
//
// It wires the core/drift engine against the label database and the vendor
// platform client, and registers the HTTP surface for manual checks.
//
// # Components
//
//   - Gateway: adapts the vendor platform client to the engine's contract.
//   - Service: owns the scheduler and answers status queries.
//   - Handler: exposes the manual verification and status endpoints.
//   - Feature: registers the routes with the application.
//
// # HTTP Endpoints
//
//   - POST /sync/verify : Run a synchronous verification across all
//     sync-enabled stores and return the per-store results.
//   - GET /sync/status : Scheduler state and pending resync queue depth.
//   - GET /sync/labels/{identifier} : Cross-system view of a single label.
package sync
