package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonwraymond/standardslibrarian/library"
)

func TestSectionMatchesBidirectional(t *testing.T) {
	tests := []struct {
		query, section string
		want           bool
	}{
		{"8", "8", true},
		{"8.7", "8", true},     // child query matches parent section
		{"8", "8.7.3", true},   // parent query matches child section
		{"8.7", "8.7.3", true},
		{"8", "18", false},     // no dot boundary, no match
		{"18", "8", false},
		{"8.7", "8.9", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.query, tt.section), func(t *testing.T) {
			assert.Equal(t, tt.want, sectionMatches(tt.query, tt.section))
		})
	}
}

func TestFindAnnexesSectionContainment(t *testing.T) {
	std := &library.Standard{
		Annexes: []library.Annex{
			{ID: "Annex F", Description: "Test methods for leakage currents", RelatedSections: []string{"8"}},
			{ID: "Annex Z", Description: "Unrelated guidance", RelatedSections: []string{"8.7.3"}},
		},
	}

	// Child query surfaces the parent-scoped annex.
	hits := FindAnnexes(std, "8.7")
	require.Len(t, hits, 2)
	assert.Equal(t, "Annex F", hits[0].ID)
	assert.Equal(t, RuleSection, hits[0].Rule)

	// Parent query surfaces the child-scoped annex.
	hits = FindAnnexes(std, "8")
	require.Len(t, hits, 2)
	assert.Equal(t, "Annex Z", hits[1].ID)
}

func TestFindAnnexesGeneralMarker(t *testing.T) {
	std := &library.Standard{
		Annexes: []library.Annex{
			{ID: "Annex A", Description: "Rationale for hermeticity requirements", RelatedSections: []string{"general"}},
			{ID: "Annex B", Description: "Packaging guidance", RelatedSections: []string{"12"}},
		},
	}

	// The marker lets a description hit count as a section match even
	// though "general" is not a real section number.
	hits := FindAnnexes(std, "rationale for hermeticity")
	require.Len(t, hits, 1)
	assert.Equal(t, "Annex A", hits[0].ID)
	assert.Equal(t, RuleSection, hits[0].Rule)

	hits = FindAnnexes(std, "packaging")
	require.Len(t, hits, 1)
	assert.Equal(t, "Annex B", hits[0].ID)
	assert.Equal(t, RuleDescription, hits[0].Rule)
}

func TestFindTablesDedupe(t *testing.T) {
	std := &library.Standard{
		KeyTables: []library.Exhibit{
			// Matches both the description pass and section containment;
			// must appear exactly once.
			{ID: "Table 3", Description: "Limits for section 8.7 leakage", Location: "8.7.3"},
		},
	}

	hits := FindTables(std, "8.7 leakage")
	require.Len(t, hits, 1)
	assert.Equal(t, "Table 3", hits[0].ID)
	assert.Equal(t, RuleDescription, hits[0].Rule, "description pass classifies first")
}

func TestFindFiguresByLocationAndWord(t *testing.T) {
	std := &library.Standard{
		KeyFigures: []library.Exhibit{
			{ID: "Figure F.1", Description: "Test circuit for Type B measurement", Location: "Annex F", RelatedSections: []string{"8.7.3"}},
			{ID: "Figure 2", Description: "Development process overview", Location: "5"},
		},
	}

	hits := FindFigures(std, "8.7")
	require.Len(t, hits, 1)
	assert.Equal(t, "Figure F.1", hits[0].ID)
	assert.Equal(t, RuleSection, hits[0].Rule)

	hits = FindFigures(std, "software development lifecycle")
	require.Len(t, hits, 1)
	assert.Equal(t, "Figure 2", hits[0].ID)
	assert.Equal(t, RuleWord, hits[0].Rule)
}

func TestFindSectionsTopicIndirection(t *testing.T) {
	std := &library.Standard{
		KeyTopics: []string{"patient leakage current"},
		Sections: []library.Section{
			{Number: "3", Description: "Terms and definitions"},
			{Number: "8", Description: "Protection against electrical hazards including patient leakage current"},
		},
	}

	// The full query is in no section description, but it contains the
	// key topic, and the topic points at section 8.
	hits := FindSections(std, "patient leakage current in dialysis machines")
	require.NotEmpty(t, hits)
	assert.Equal(t, "8", hits[0].ID)
	assert.Equal(t, RuleTopic, hits[0].Rule)
}

func TestFindSectionsDirectDescriptionMatch(t *testing.T) {
	std := &library.Standard{
		Sections: []library.Section{
			{Number: "4", Description: "General requirements for risk management"},
			{Number: "7", Description: "Risk control"},
		},
	}

	hits := FindSections(std, "risk")
	require.Len(t, hits, 2)
	assert.Equal(t, "4", hits[0].ID)
	assert.Equal(t, RuleDescription, hits[0].Rule)
	assert.Equal(t, "7", hits[1].ID)
}

func TestFinderResultCap(t *testing.T) {
	std := &library.Standard{}
	for i := 1; i <= 8; i++ {
		std.KeyTables = append(std.KeyTables, library.Exhibit{
			ID:          fmt.Sprintf("Table %d", i),
			Description: "leakage current limits",
		})
	}

	hits := FindTables(std, "leakage")
	assert.Len(t, hits, maxFinderResults)
	assert.Equal(t, "Table 1", hits[0].ID)
}
