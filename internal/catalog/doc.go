// Package catalog holds the in-memory entity model conduit works with:
// the configuration document and its Portfolio, Product and Role entities.
//
// The document is a cache of remote Service Catalog state, persisted as a
// tagged YAML blob in the per-account configuration bucket. Entities carry
// their remote ids once resolved and expose lifecycle methods that call the
// injected gateway for the actual remote operations. The document is never
// authoritative: reconciliation helpers in this package verify document
// entries against live state and clean up drift.
package catalog
