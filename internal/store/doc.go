// Package store provides SQLite-backed durable storage for ResumeHub
// entities.
//
// The store owns identity (UUIDv7 ids), timestamps and display order for
// nine collections:
//   - profile, settings: singletons, created once at first run, never deleted
//   - experiences, projects, education: orderable collections with a dense
//     zero-based display order
//   - skills, certifications, cv_variants: unordered collections
//   - activity_log: append-only mutation journal
//
// # Mutation discipline
//
// Every mutating operation runs in a single transaction that:
//   - validates input before touching any row (no partial state)
//   - refreshes updated_at on the affected record
//   - appends exactly one activity_log row describing the action
//
// Readers therefore always observe fully-committed state.
//
// # Invariants
//
//   - Exactly one cv_variants row has is_default = 1 once any variant
//     exists; deleting the default variant is rejected
//   - Reorder accepts only an exact permutation of a collection's ids
//   - Variant id-reference sets may dangle (no cascading delete); the
//     composer skips missing ids
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// List-valued fields (tasks, technologies, highlights, variant id sets)
// are stored as JSON arrays in TEXT columns. Timestamps are RFC 3339
// nanosecond UTC strings.
package store
