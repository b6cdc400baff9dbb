// Package database provides the PostgreSQL connection pool used by the
// database-backed recipe catalog.
package database
