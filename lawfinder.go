// Package lawfinder converts legacy court-decision HTML documents into
// structured, schema-validated JSON records for retrieval indexing. It
// combines deterministic heuristics (case title, decision date) with a
// language-model extraction step constrained by a fixed response schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, jsonschema/, fs/).
package lawfinder
