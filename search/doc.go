// Package search implements the relevance scorer and the scoped entity
// finders over library data.
//
// Scoring is additive, case-insensitive, and substring-based; there is no
// tokenization or stemming beyond whitespace word splitting. The weight
// table in Score is load-bearing: the curated library data was tuned
// against these exact weights, so they must not drift.
//
// # Ranking
//
// Rank scores every standard in the library against a query, keeps the
// matches, and returns them in descending score order:
//
//	results := search.Rank(lib.Standards(), "leakage current", 3)
//	for _, r := range results {
//	    fmt.Printf("%s %.1f\n", r.Standard.ID, r.Score)
//	}
//
// Equal scores keep store order (the sort is stable).
//
// # Finders
//
// FindSections, FindTables, FindFigures, and FindAnnexes locate sub-entities
// of one standard by topic or section number. They share a three-rule
// precedence (description substring, dot-notation section containment,
// word-level match) plus per-kind nuances: annexes marked "general" match
// any description hit, and the section finder follows key-topic indirection.
// Results are de-duplicated by id and capped at five.
package search
