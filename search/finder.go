package search

import (
	"strings"

	"github.com/jonwraymond/standardslibrarian/library"
)

// maxFinderResults caps finder output after de-duplication.
const maxFinderResults = 5

// generalMarker in an annex's related sections marks it standard-wide: it
// matches any query that hits its description, regardless of section.
const generalMarker = "general"

// Rule classifies why a finder matched an entity. The first rule that fires
// determines the classification; later rules can still accumulate the
// entity if a different candidate surfaced it first.
type Rule string

const (
	RuleDescription Rule = "description"
	RuleSection     Rule = "section"
	RuleWord        Rule = "word"
	RuleTopic       Rule = "topic"
)

// Hit is one matched sub-entity.
type Hit struct {
	ID              string
	Description     string
	Location        string
	RelatedSections []string
	Normative       bool
	Rule            Rule
}

type candidate struct {
	id              string
	description     string
	location        string
	relatedSections []string
	normative       bool
}

type findOptions struct {
	// sectionContainment enables the dot-notation containment pass over
	// location and related sections.
	sectionContainment bool
	// generalMarker treats a "general" related section as matching any
	// description hit, and checks containment ahead of the description
	// rule so the marker stays observable (annex finder only).
	generalMarker bool
}

// sectionMatches reports whether a query matches a declared section number
// in either hierarchical direction: "8" matches "8.7" and "8.7.3" matches
// "8". Both sides are already lower-cased.
func sectionMatches(query, section string) bool {
	return query == section ||
		strings.HasPrefix(query, section+".") ||
		strings.HasPrefix(section, query+".")
}

// find applies the shared matching precedence to a candidate list:
// description substring, then section containment, then word-level match.
// Every candidate is classified by the first rule that fires; results keep
// candidate order within each pass and are de-duplicated by id, capped at
// maxFinderResults.
func find(query string, cands []candidate, opts findOptions) []Hit {
	q := strings.ToLower(query)
	var hits []Hit

	for _, c := range cands {
		desc := strings.ToLower(c.description)

		if opts.generalMarker && opts.sectionContainment && c.sectionMatch(q, desc, true) {
			hits = append(hits, c.hit(RuleSection))
			continue
		}

		if strings.Contains(desc, q) {
			hits = append(hits, c.hit(RuleDescription))
			continue
		}

		if opts.sectionContainment && !opts.generalMarker && c.sectionMatch(q, desc, false) {
			hits = append(hits, c.hit(RuleSection))
			continue
		}

		for _, word := range strings.Fields(q) {
			if len(word) >= minWordLen && strings.Contains(desc, word) {
				hits = append(hits, c.hit(RuleWord))
				break
			}
		}
	}

	return truncate(dedupe(hits))
}

func (c candidate) hit(rule Rule) Hit {
	return Hit{
		ID:              c.id,
		Description:     c.description,
		Location:        c.location,
		RelatedSections: c.relatedSections,
		Normative:       c.normative,
		Rule:            rule,
	}
}

func (c candidate) sectionMatch(q, desc string, general bool) bool {
	if c.location != "" && sectionMatches(q, strings.ToLower(c.location)) {
		return true
	}
	for _, sec := range c.relatedSections {
		s := strings.ToLower(sec)
		if sectionMatches(q, s) {
			return true
		}
		if general && s == generalMarker && strings.Contains(desc, q) {
			return true
		}
	}
	return false
}

func dedupe(hits []Hit) []Hit {
	seen := make(map[string]bool, len(hits))
	out := hits[:0]
	for _, h := range hits {
		if !seen[h.ID] {
			seen[h.ID] = true
			out = append(out, h)
		}
	}
	return out
}

func truncate(hits []Hit) []Hit {
	if len(hits) > maxFinderResults {
		return hits[:maxFinderResults]
	}
	return hits
}

// FindSections locates sections of a standard relevant to a topic. Beyond
// the description and word passes, it follows key-topic indirection: a key
// topic that matches the query pulls in every section whose description
// mentions that topic.
func FindSections(s *library.Standard, topic string) []Hit {
	q := strings.ToLower(topic)
	var hits []Hit

	for _, sec := range s.Sections {
		if strings.Contains(strings.ToLower(sec.Description), q) {
			hits = append(hits, Hit{ID: sec.Number, Description: sec.Description, Rule: RuleDescription})
		}
	}

	for _, keyTopic := range s.KeyTopics {
		kt := strings.ToLower(keyTopic)
		if !eitherContains(q, kt) {
			continue
		}
		for _, sec := range s.Sections {
			if strings.Contains(strings.ToLower(sec.Description), kt) {
				hits = append(hits, Hit{ID: sec.Number, Description: sec.Description, Rule: RuleTopic})
			}
		}
	}

	for _, sec := range s.Sections {
		desc := strings.ToLower(sec.Description)
		for _, word := range strings.Fields(q) {
			if len(word) >= minWordLen && strings.Contains(desc, word) {
				hits = append(hits, Hit{ID: sec.Number, Description: sec.Description, Rule: RuleWord})
				break
			}
		}
	}

	return truncate(dedupe(hits))
}

// FindTables locates key tables of a standard by topic or section number.
func FindTables(s *library.Standard, topic string) []Hit {
	return find(topic, exhibitCandidates(s.KeyTables), findOptions{sectionContainment: true})
}

// FindFigures locates key figures of a standard by topic or section number.
func FindFigures(s *library.Standard, topic string) []Hit {
	return find(topic, exhibitCandidates(s.KeyFigures), findOptions{sectionContainment: true})
}

// FindAnnexes locates annexes of a standard by section number or topic.
// Callers split the hits into normative and informative groups for display.
func FindAnnexes(s *library.Standard, sectionOrTopic string) []Hit {
	cands := make([]candidate, len(s.Annexes))
	for i, a := range s.Annexes {
		cands[i] = candidate{
			id:              a.ID,
			description:     a.Description,
			relatedSections: a.RelatedSections,
			normative:       a.Normative,
		}
	}
	return find(sectionOrTopic, cands, findOptions{sectionContainment: true, generalMarker: true})
}

func exhibitCandidates(exhibits []library.Exhibit) []candidate {
	cands := make([]candidate, len(exhibits))
	for i, e := range exhibits {
		cands[i] = candidate{
			id:              e.ID,
			description:     e.Description,
			location:        e.Location,
			relatedSections: e.RelatedSections,
		}
	}
	return cands
}
