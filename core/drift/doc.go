// Package drift implements the periodic verification job that detects drift
// between locally persisted label records and the vendor ESL platform.
//
// The local database is authoritative for which labels should exist: records
// are created locally first and then pushed to the platform. Drift is any
// synced local record the platform no longer knows about. Records the
// platform holds without a local counterpart are reported but never acted on,
// since other tenants and manual vendor-side registrations are legitimate.
//
// # Architecture
//
// The verification pipeline consists of four components:
//
// 1. Scheduler: owns the warm-up tick, the fixed-delay periodic loop, the
// atomic in-flight gate, and the synchronous manual entry point (VerifyNow).
//
// 2. Detector: per-store set comparison of local synced records against the
// platform's record set, correlated over normalized keys.
//
// 3. Queuer: converts missing records into capped resync submissions, one
// failure never dropping the rest of the batch.
//
// 4. Reporter: logs per-store outcomes and a run summary. Results are
// ephemeral; the log stream and the manual caller are their only consumers.
//
// # Correlation Keys
//
// Local records correlate by external id, falling back to the virtual space
// id for records predating the external id backfill. Remote records correlate
// by the first populated field from a closed alias list, because platform API
// versions disagree on the field name. Records on either side that yield no
// key are excluded from comparison rather than treated as drift.
//
// # Fail-safe
//
// A failed platform fetch yields a non-verified result with the Error field
// set and empty diff lists. Transient connectivity problems must never be
// reported as drift, and nothing is queued for resync in that case.
//
// # Usage
//
//	sched := drift.NewScheduler(cfg, repo, gateway, queue, logger)
//	sched.Start(cfg.Interval)
//	defer sched.Stop()
//
//	// Operator-triggered check:
//	results, err := sched.VerifyNow(ctx)
package drift
