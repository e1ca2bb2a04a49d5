// Package store persists shape collections to flat files, one file per
// kind.
//
// A Store binds a directory, a codec and an id allocator. Save writes
// "<Kind>.<ext>" with the collection's encoding, unconditionally
// overwriting any previous file; Load reads it back and reconstructs the
// shapes through the factory, each carrying the id stored in its
// attributes.
//
// # Best-Effort Contract
//
// Several conditions are absorbed rather than raised, by design:
//
//   - Save given shapes of the wrong kind excludes them silently.
//   - Load on a missing file returns an empty list, not an error.
//   - With the CSV codec, malformed rows are skipped, not fatal.
//
// Parse failures from the JSON codec and validation failures from the
// shapes themselves are the exceptions: they propagate to the caller
// unwrapped.
//
// Writes are whole-file and not atomic; a crash mid-write can leave a
// truncated file.
package store
