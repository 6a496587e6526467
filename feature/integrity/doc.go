// Package integrity provides system health checks for the ESL Manager.
//
// Unlike the 'sync' package which reconciles label state against the vendor
// platform, this package validates the infrastructure the service itself
// depends on: the asset bucket and the label database.
//
// # Checks Provided
//
//   - Structure: Checks that the required folder layout exists in the storage
//     bucket (/templates, /fonts, /previews).
//   - Templates: Verifies that every label model named by the template
//     manifest has its layout template, and reports templates and previews
//     that no model claims.
//   - Database: Validates that the connected database schema matches the
//     label models (tables, columns, types).
//
// The template manifest is loaded through a TTL cache guarded by
// singleflight, so concurrent checks share one bucket read.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/templates : Runs template coverage check (supports ?clean=true).
//   - GET /integrity/database : Runs database schema check.
package integrity
