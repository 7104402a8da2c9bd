package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/standardslibrarian/library"
)

func TestScoreTitleMatch(t *testing.T) {
	std := &library.Standard{
		ID:    "STD_1",
		Title: "Safety requirements for Leakage Current measurement",
	}

	match, score := Score("leakage current", std)
	assert.True(t, match)
	// +3.0 title, +0.5 per word ("leakage", "current") from the word pass.
	assert.InDelta(t, 4.0, score, 1e-9)
	assert.GreaterOrEqual(t, score, 3.0)
}

func TestScoreWeightTable(t *testing.T) {
	query := "widget"

	tests := []struct {
		name string
		std  *library.Standard
		want float64
	}{
		{"title", &library.Standard{Title: "About the widget"}, 3.0 + 0.5},
		{"description", &library.Standard{Description: "covers widget handling"}, 2.0 + 0.3},
		{"scope", &library.Standard{Scope: "applies to widget systems"}, 2.0},
		{"topic", &library.Standard{KeyTopics: []string{"widget safety"}}, 1.5 + 0.5},
		{"term", &library.Standard{KeyTerms: []string{"WIDGET"}}, 1.5 + 0.5},
		{"section", &library.Standard{Sections: []library.Section{{Number: "4", Description: "widget requirements"}}}, 1.0},
		{"annex", &library.Standard{Annexes: []library.Annex{{ID: "Annex A", Description: "widget test methods"}}}, 0.8},
		{"table", &library.Standard{KeyTables: []library.Exhibit{{ID: "Table 1", Description: "widget limits"}}}, 1.0},
		{"figure", &library.Standard{KeyFigures: []library.Exhibit{{ID: "Figure 1", Description: "widget diagram"}}}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, score := Score(query, tt.std)
			assert.True(t, match)
			assert.InDelta(t, tt.want, score, 1e-9)
		})
	}
}

func TestScoreTopicMatchesBothDirectionsAndAccumulate(t *testing.T) {
	std := &library.Standard{
		KeyTopics: []string{
			"patient leakage current", // query is a substring of the topic
			"leakage",                 // topic is a substring of the query
		},
	}

	_, score := Score("leakage current", std)
	// +1.5 per matching topic (uncapped), then +0.5 per query word from
	// the word pass; each word contributes once no matter how many
	// topics it hits.
	assert.InDelta(t, 4.0, score, 1e-9)
}

func TestScoreWordPassSkipsShortWords(t *testing.T) {
	std := &library.Standard{
		Title: "electromagnetic compatibility for AIMD devices",
	}

	// "emc" is three characters: no word-pass hit, and the whole-query
	// substring is absent, so nothing matches.
	match, score := Score("emc gap", std)
	assert.False(t, match)
	assert.Zero(t, score)
}

func TestScoreNoMatch(t *testing.T) {
	std := &library.Standard{
		Title:       "Medical electrical equipment",
		Description: "General safety standard",
	}

	match, score := Score("cryptographic protocols", std)
	assert.False(t, match)
	assert.Zero(t, score)
}

func TestRankDescendingAndStable(t *testing.T) {
	// a and c tie on a topic match; b outranks both on a title match.
	a := &library.Standard{ID: "A", KeyTopics: []string{"gadget"}}
	b := &library.Standard{ID: "B", Title: "the gadget standard"}
	c := &library.Standard{ID: "C", KeyTopics: []string{"gadget"}}
	d := &library.Standard{ID: "D", Title: "unrelated"}

	results := Rank([]*library.Standard{a, b, c, d}, "gadget", 10)
	require.Len(t, results, 3)

	assert.Equal(t, "B", results[0].Standard.ID)
	// Tied scores keep store order: A before C.
	assert.Equal(t, "A", results[1].Standard.ID)
	assert.Equal(t, "C", results[2].Standard.ID)
	assert.Equal(t, results[1].Score, results[2].Score)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRankDefaultLimit(t *testing.T) {
	standards := []*library.Standard{
		{ID: "A", KeyTopics: []string{"gadget"}},
		{ID: "B", KeyTopics: []string{"gadget"}},
		{ID: "C", KeyTopics: []string{"gadget"}},
		{ID: "D", KeyTopics: []string{"gadget"}},
	}

	results := Rank(standards, "gadget", 0)
	assert.Len(t, results, DefaultLimit)
}

func TestRankClassBOverSeedData(t *testing.T) {
	lib := library.New()
	library.Seed(lib)

	results := Rank(lib.Standards(), "Class B", 3)
	require.NotEmpty(t, results)

	// The software lifecycle standard carries "Class B" as a key topic
	// and defined term (+1.5 each), beating any word-level-only match.
	assert.Equal(t, "IEC_62304", results[0].Standard.ID)
	assert.GreaterOrEqual(t, results[0].Score, 3.0)
}

func TestMatchingTopicsAndSections(t *testing.T) {
	lib := library.New()
	library.Seed(lib)

	std, err := lib.Standard("IEC_60601-1")
	require.NoError(t, err)

	topics := MatchingTopics("leakage current", std)
	assert.Contains(t, topics, "patient leakage current")

	sections := MatchingSections("leakage current", std)
	require.NotEmpty(t, sections)
	assert.Equal(t, "8", sections[0].Number)
}
