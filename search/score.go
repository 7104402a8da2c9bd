package search

import (
	"sort"
	"strings"

	"github.com/jonwraymond/standardslibrarian/library"
)

// Scoring weights. Exact values are part of the compatibility contract:
// the curated index data was tuned against them.
const (
	weightTitle       = 3.0
	weightDescription = 2.0
	weightScope       = 2.0
	weightTopic       = 1.5
	weightTerm        = 1.5
	weightSection     = 1.0
	weightAnnex       = 0.8
	weightTable       = 1.0
	weightFigure      = 0.5

	wordWeightTitle       = 0.5
	wordWeightDescription = 0.3
	wordWeightTopic       = 0.5
	wordWeightTerm        = 0.5

	// Words this short are skipped by the word-level pass. Three-letter
	// acronyms stay reachable through the whole-query passes and the
	// cross-reference index.
	minWordLen = 4

	// DefaultLimit is the default result count for Rank.
	DefaultLimit = 3
)

// Score computes the relevance of one standard against a free-text query.
// The match flag is true iff the score is positive.
func Score(query string, s *library.Standard) (bool, float64) {
	q := strings.ToLower(query)
	score := 0.0

	if strings.Contains(strings.ToLower(s.Title), q) {
		score += weightTitle
	}
	if strings.Contains(strings.ToLower(s.Description), q) {
		score += weightDescription
	}
	if strings.Contains(strings.ToLower(s.Scope), q) {
		score += weightScope
	}

	// Topics and terms match in either substring direction, uncapped.
	for _, topic := range s.KeyTopics {
		if eitherContains(q, strings.ToLower(topic)) {
			score += weightTopic
		}
	}
	for _, term := range s.KeyTerms {
		if eitherContains(q, strings.ToLower(term)) {
			score += weightTerm
		}
	}

	for _, sec := range s.Sections {
		if strings.Contains(strings.ToLower(sec.Description), q) {
			score += weightSection
		}
	}
	for _, annex := range s.Annexes {
		if strings.Contains(strings.ToLower(annex.Description), q) {
			score += weightAnnex
		}
	}
	for _, table := range s.KeyTables {
		if strings.Contains(strings.ToLower(table.Description), q) {
			score += weightTable
		}
	}
	for _, figure := range s.KeyFigures {
		if strings.Contains(strings.ToLower(figure.Description), q) {
			score += weightFigure
		}
	}

	// Word-level pass. Each check contributes at most once per word, no
	// matter how many topics or terms the word matches.
	for _, word := range strings.Fields(q) {
		if len(word) < minWordLen {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), word) {
			score += wordWeightTitle
		}
		if strings.Contains(strings.ToLower(s.Description), word) {
			score += wordWeightDescription
		}
		if anyContains(s.KeyTopics, word) {
			score += wordWeightTopic
		}
		if anyContains(s.KeyTerms, word) {
			score += wordWeightTerm
		}
	}

	return score > 0, score
}

func eitherContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func anyContains(values []string, word string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), word) {
			return true
		}
	}
	return false
}

// Result is one ranked standard.
type Result struct {
	Standard *library.Standard
	Score    float64
}

// Rank scores every standard against the query, keeps the matches, and
// returns them sorted by descending score, truncated to limit. The sort is
// stable: equal scores keep the input (store) order. A limit <= 0 uses
// DefaultLimit.
func Rank(standards []*library.Standard, query string, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]Result, 0, len(standards))
	for _, s := range standards {
		if match, score := Score(query, s); match {
			results = append(results, Result{Standard: s, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// MatchingTopics returns the standard's key topics that match the query in
// either substring direction, for result annotation.
func MatchingTopics(query string, s *library.Standard) []string {
	q := strings.ToLower(query)
	var out []string
	for _, topic := range s.KeyTopics {
		if eitherContains(q, strings.ToLower(topic)) {
			out = append(out, topic)
		}
	}
	return out
}

// MatchingSections returns the standard's sections whose description
// contains the query, for result annotation.
func MatchingSections(query string, s *library.Standard) []library.Section {
	q := strings.ToLower(query)
	var out []library.Section
	for _, sec := range s.Sections {
		if strings.Contains(strings.ToLower(sec.Description), q) {
			out = append(out, sec)
		}
	}
	return out
}
