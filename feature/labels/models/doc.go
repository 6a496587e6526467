// Package models contains the GORM schemas for the ESL management database.
//
// It defines the 'stores', 'labels' and 'resync_tasks' tables together with
// the projections into the verification engine's neutral types. The schemas
// target MySQL in production; the sqlite driver creates compatible tables for
// local development and tests.
package models
