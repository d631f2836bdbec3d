// Package store is the client-resident persistence layer. It holds named
// collections as JSON text and nothing else: callers read a whole collection,
// mutate it in memory, and write it back wholesale. There is no per-record
// primitive and no cross-collection transaction. If two processes share one
// store file, the last writer wins on the whole collection; that is a
// documented property of a client-resident store, not something this layer
// locks against.
package store

// Collection names. The suffixed facilities key outlived an earlier record
// shape; keeping it avoids resurrecting stale first-generation data.
const (
	CollectionProfiles    = "guardian_profiles"
	CollectionCredentials = "guardian_credentials"
	CollectionSession     = "guardian_current_user"
	CollectionFacilities  = "guardian_facilities_v2"
	CollectionReports     = "community_guardian_reports"
	CollectionPending     = "guardian_pending_reports"
)

// Store persists named collections as serialized text. Load reports
// found=false for a collection that was never written, which callers treat
// as empty (or as the trigger to seed defaults).
type Store interface {
	Load(name string) (payload string, found bool, err error)
	Save(name, payload string) error
	Delete(name string) error
}
