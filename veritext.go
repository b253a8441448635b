// Package veritext verifies that text from a structured design tree
// (such as a Figma node tree) has been faithfully reproduced in an HTML
// rendering of that design. It extracts text from both sides, normalizes
// whitespace, and matches each design text against the visible markup
// fragments, producing a pass/fail verdict with per-text detail.
//
// This package contains domain types, interfaces, and the pure
// verification engine following Ben Johnson's Standard Package Layout.
// Implementations of the collaborator interfaces live in subdirectories
// named after their primary dependency (e.g., figma/, rod/, sqlite/).
package veritext
