package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for consistent error handling.
var (
	ErrStandardNotFound = errors.New("standard not found")
)

// Library is the store of Standards and the flattened cross-reference
// index. It is populated once at startup and treated as immutable
// afterwards; every query method is a pure read.
type Library struct {
	// PDFDirectory is where the standards' PDF files live. Only PDFPath
	// consults the filesystem; everything else is in-memory.
	PDFDirectory string

	standards map[string]*Standard
	order     []string

	xrefs    map[string]*CrossReference
	xrefKeys []string
}

// New returns an empty Library with the default PDF directory.
func New() *Library {
	return &Library{
		PDFDirectory: "data/pdfs",
		standards:    make(map[string]*Standard),
		xrefs:        make(map[string]*CrossReference),
	}
}

// AddStandard adds a standard to the library, replacing any existing
// standard with the same id.
func (l *Library) AddStandard(s *Standard) {
	if _, exists := l.standards[s.ID]; !exists {
		l.order = append(l.order, s.ID)
	}
	l.standards[s.ID] = s
}

// Standard returns the standard with the given id.
func (l *Library) Standard(id string) (*Standard, error) {
	s, ok := l.standards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStandardNotFound, id)
	}
	return s, nil
}

// Standards returns all standards in insertion order. Ranking ties are
// broken by this order, so it is part of the observable contract.
func (l *Library) Standards() []*Standard {
	out := make([]*Standard, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.standards[id])
	}
	return out
}

// IDs returns all standard ids in insertion order.
func (l *Library) IDs() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of standards in the library.
func (l *Library) Len() int {
	return len(l.order)
}

// AddCrossReference indexes a cross-reference under its canonical topic and
// every alias, lower-cased. A key already held by an earlier record is
// overwritten in place: the mapping for that key now points at the new
// record, the key keeps its scan position, and the earlier record's other
// keys are untouched (last-write-wins per key).
func (l *Library) AddCrossReference(x *CrossReference) {
	l.indexXref(strings.ToLower(x.Topic), x)
	for _, alias := range x.Aliases {
		l.indexXref(strings.ToLower(alias), x)
	}
}

func (l *Library) indexXref(key string, x *CrossReference) {
	if _, exists := l.xrefs[key]; !exists {
		l.xrefKeys = append(l.xrefKeys, key)
	}
	l.xrefs[key] = x
}

// LookupTopic resolves a query against the cross-reference index.
//
// An exact lower-cased key hit wins. Otherwise the indexed keys are scanned
// in first-insertion order and the first key that contains the query, or is
// contained in it, wins. The scan is first-match, not best-match: it is the
// cheap path, and deliberately imprecise for ambiguous short queries.
// Returns nil when nothing matches.
func (l *Library) LookupTopic(query string) *CrossReference {
	q := strings.ToLower(query)

	if x, ok := l.xrefs[q]; ok {
		return x
	}

	for _, key := range l.xrefKeys {
		if strings.Contains(q, key) || strings.Contains(key, q) {
			return l.xrefs[key]
		}
	}

	return nil
}

// CrossReferences returns the distinct cross-reference records in first
// indexed order. Records reachable only through overwritten keys are
// excluded.
func (l *Library) CrossReferences() []*CrossReference {
	seen := make(map[*CrossReference]bool)
	out := make([]*CrossReference, 0)
	for _, key := range l.xrefKeys {
		x := l.xrefs[key]
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// TopicCount returns the number of distinct indexed cross-references.
func (l *Library) TopicCount() int {
	return len(l.CrossReferences())
}

// PDFPath returns the path to a standard's PDF if the file exists under the
// configured PDF directory. The existence check is the library's only
// filesystem access.
func (l *Library) PDFPath(id string) (string, bool) {
	s, ok := l.standards[id]
	if !ok {
		return "", false
	}
	path := filepath.Join(l.PDFDirectory, s.Filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
