// Package export implements the JSON CV document format: building a
// document from a composed snapshot, marshaling it with an optional
// _metadata envelope, and parsing/applying imported documents.
//
// The document shape is the classic Profile-rooted CV: personalInfo,
// skills grouped by category, experience/education/projects/certifications
// arrays, softSkills and languages. Import accepts both the enveloped and
// bare shapes and rejects documents missing personalInfo, skills or
// experience with ImportFormatError before anything touches the store.
//
// PDF/PNG rasterization is an external collaborator; this package only
// deals in the JSON data set.
package export
