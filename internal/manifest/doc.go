// Package manifest reads, patches, and validates the package.json of a
// generated project. Documents are kept as generic maps so that fields the
// package manager wrote and we do not model survive a load/save round trip
// untouched. Validation checks the document against an embedded JSON Schema.
package manifest
