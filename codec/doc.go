// Package codec converts lists of shape dictionary views to and from the
// two interchange text formats.
//
// # Formats
//
// [JSON] is the structured format: an array of flat integer-valued
// objects, with the literal text "[]" for an empty collection. It parses
// strictly - syntactically invalid text surfaces as a [*ParseError].
//
// [CSV] is the flat format: one line per shape, the kind's fixed columns
// comma-separated, newline-terminated, no header. It parses leniently -
// rows that do not match the expected column pattern are silently
// skipped, so a partially corrupt file still loads its good rows.
//
// The strict/lenient split is deliberate: a structured document is
// all-or-nothing, while row-oriented data is naturally partitionable.
package codec
