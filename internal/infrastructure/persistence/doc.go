// Package persistence provides the storage implementations for sessions.
// Session metadata is stored through GORM (SQLite or PostgreSQL) for listing
// and audit; live key material is held only by the in-memory session store
// and is discarded when a session is deleted or the process exits.
package persistence
