// Package document wraps a comment-preserving TOML tree with typed,
// fetch-or-create accessors for the container kinds a config patch needs.
//
// # Key capabilities
//
//   - Load a document from disk, treating a missing file as a fresh
//     empty document
//   - Fetch-or-create nested tables, arrays, and arrays-of-tables,
//     rejecting keys that already hold a different kind
//   - Insert-if-absent on arrays (value equality) and arrays-of-tables
//     (deep structural equality)
//   - Deep value comparison between two documents, ignoring formatting
//
// Parsing and serialization are delegated to github.com/pelletier/go-toml;
// comments in an existing file survive a rewrite. Containers created by the
// accessors are inserted into their parent immediately, so a handle is
// always backed by the document it came from.
package document
