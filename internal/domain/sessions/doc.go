// Package sessions defines the session entity that scopes a demo key pair
// and its last ciphertext, together with the contracts for the session
// service, the in-memory key store and the metadata repository. A session
// replaces the process-wide key variables of a naive demo: key material
// lives only in memory and dies with the session, while metadata about the
// session is persisted for listing and audit.
package sessions
