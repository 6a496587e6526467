// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// connections to the local label database. MySQL is the production driver; sqlite is
// supported for local development and in-memory testing.
//
// # Connect
//
// The Connect function establishes a connection based on the configured driver.
// For MySQL it applies connection pool limits, DSN-level timeouts and verifies the
// connection with a ping before handing it out.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the database
// integrity check to verify that the tables backing the label sync pipeline
// (stores, labels, resync tasks) match their expected model definitions.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "labels")
package database
