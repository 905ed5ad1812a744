// Package compose turns a CV variant plus the full entity collections into
// a rendering-ready snapshot, and derives read-only analysis over the same
// data (completeness score, quality findings, job keyword matching).
//
// Snapshot construction is a pure function: given the same variant and
// entity state it always produces an identical snapshot. Nothing in this
// package touches the store; callers load an Entities value first and pass
// it in.
package compose
