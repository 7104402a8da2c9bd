// Package library provides the in-memory store of regulatory standard
// metadata and the cross-reference index over it.
//
// A Library holds Standard records keyed by id, in insertion order, plus a
// flattened cross-reference index mapping lower-cased topics and aliases to
// CrossReference records. The store is built once at startup (from a
// persisted JSON index, or from the built-in seed data) and is read-only for
// the rest of the process lifetime.
//
// # Usage
//
// Load an index, falling back to the seed data when empty:
//
//	lib, err := library.Load("data/standards_index.json")
//	if err != nil {
//	    return err
//	}
//	if lib.Len() == 0 {
//	    library.Seed(lib)
//	}
//
// Look up a topic in the cross-reference index:
//
//	if xref := lib.LookupTopic("leakage current"); xref != nil {
//	    fmt.Println(xref.PrimaryStandard, xref.PrimarySection)
//	}
//
// # Cross-reference aliasing
//
// AddCrossReference registers the canonical topic and every alias as index
// keys pointing at the same record. A later insertion sharing a key
// overwrites the mapping for that key only; the other keys of the earlier
// record are untouched. Downstream curated data relies on this last-write
// precedence, so it is part of the contract.
package library
