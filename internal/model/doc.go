// Package model defines the persisted entity types for ResumeHub.
//
// This package contains type definitions only. All other internal packages
// import model; model imports nothing internal. This keeps the data model
// the foundational layer with no circular dependencies.
//
// Conventions:
//   - All JSON tags use camelCase (matches the exported document format)
//   - Ids are opaque UUID strings; "default" is reserved for the Profile
//     and Settings singletons
//   - Partial updates go through typed Patch structs with pointer fields,
//     never through dynamic map merging
package model
