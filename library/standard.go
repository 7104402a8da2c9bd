package library

// Standard is the metadata record for one regulatory document.
//
// The id is globally unique within a Library. All nested identifiers
// (section numbers, annex ids, table and figure ids) are unique only within
// their owning Standard. Nested collections keep declaration order; section
// numbering is hierarchical dot-notation ("8", "8.7", "8.7.3") and is never
// sorted numerically.
type Standard struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ShortTitle   string `json:"short_title"`
	Filename     string `json:"filename"`
	Description  string `json:"description"`
	Scope        string `json:"scope"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Pages        int    `json:"pages"`

	Sections   []Section `json:"sections"`
	Annexes    []Annex   `json:"annexes,omitempty"`
	KeyTerms   []string  `json:"key_terms,omitempty"`
	KeyTables  []Exhibit `json:"key_tables,omitempty"`
	KeyFigures []Exhibit `json:"key_figures,omitempty"`
	KeyTopics  []string  `json:"key_topics,omitempty"`

	RelatedStandards []RelatedStandard `json:"related_standards,omitempty"`

	// Notes records extraction caveats for hand-curated entries.
	Notes string `json:"notes,omitempty"`
}

// Section is one numbered clause of a Standard.
type Section struct {
	Number      string `json:"number"`
	Description string `json:"description"`
}

// Annex describes an annex and whether it is normative (required for
// compliance) or informative (guidance only). RelatedSections lists the
// clause numbers the annex supports; the literal entry "general" marks an
// annex that applies standard-wide.
type Annex struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	Normative       bool     `json:"normative"`
	RelatedSections []string `json:"related_sections,omitempty"`
}

// Exhibit is a key table or figure. Location is the clause (or annex) the
// exhibit appears in, if known.
type Exhibit struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	Location        string   `json:"location,omitempty"`
	RelatedSections []string `json:"related_sections,omitempty"`
}

// RelatedStandard is a directed edge to another Standard. The target id is
// not required to exist in the Library; a dangling reference is valid and
// rendered as "not in library" rather than treated as an error.
type RelatedStandard struct {
	ID           string `json:"id"`
	Relationship string `json:"relationship"`
	Description  string `json:"description,omitempty"`
}

// CrossReference maps a curated topic to its primary location and a list of
// secondary pointers. Neither PrimaryStandard nor PrimarySection is
// validated against the store; they are free-form curated text.
type CrossReference struct {
	Topic           string    `json:"topic"`
	Aliases         []string  `json:"aliases,omitempty"`
	PrimaryStandard string    `json:"primary_standard"`
	PrimarySection  string    `json:"primary_section"`
	PrimaryNote     string    `json:"primary_note,omitempty"`
	AlsoSee         []AlsoSee `json:"also_see,omitempty"`
}

// AlsoSee is one secondary pointer of a CrossReference.
type AlsoSee struct {
	Standard string `json:"standard"`
	Section  string `json:"section"`
	Note     string `json:"note,omitempty"`
}
