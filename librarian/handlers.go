package librarian

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonwraymond/standardslibrarian/library"
	"github.com/jonwraymond/standardslibrarian/search"
)

// sortedStandards returns the library's standards sorted by id, for the
// listing tools. Score-ordered output uses store order instead.
func (s *Service) sortedStandards() []*library.Standard {
	standards := s.lib.Standards()
	sort.Slice(standards, func(i, j int) bool {
		return standards[i].ID < standards[j].ID
	})
	return standards
}

func (s *Service) listStandards(ctx context.Context, args map[string]any) (string, error) {
	if s.lib.Len() == 0 {
		return "No standards in library. Add PDFs to the data/pdfs directory and update the index.", nil
	}

	out := []string{"# Available Regulatory Standards\n"}

	for _, std := range s.sortedStandards() {
		out = append(out,
			fmt.Sprintf("## %s", std.ShortTitle),
			fmt.Sprintf("**ID:** `%s`", std.ID),
			fmt.Sprintf("**Title:** %s", std.Title),
			fmt.Sprintf("**Organization:** %s (%s)", std.Organization, std.Year),
			fmt.Sprintf("\n%s\n", std.Description),
		)

		if _, ok := s.lib.PDFPath(std.ID); ok {
			out = append(out, fmt.Sprintf("PDF available: `%s`\n", std.Filename))
		} else {
			out = append(out, fmt.Sprintf("PDF not found: `%s` (add to %s)\n", std.Filename, s.lib.PDFDirectory))
		}

		out = append(out, "---\n")
	}

	if topics := s.lib.TopicCount(); topics > 0 {
		out = append(out,
			fmt.Sprintf("\n**Cross-reference index:** %d topics indexed for quick lookup", topics),
			"Use `lookup_topic` for fastest access to specific topics.",
		)
	}

	return strings.Join(out, "\n"), nil
}

func (s *Service) lookupTopic(ctx context.Context, args map[string]any) (string, error) {
	topic, err := stringArg(args, "topic")
	if err != nil {
		return "", err
	}

	xref := s.lib.LookupTopic(topic)
	if xref == nil {
		return fmt.Sprintf(`Topic '%s' not found in cross-reference index.

**Options:**
1. Try `+"`find_relevant_standards`"+` for keyword search across all standards
2. Use `+"`get_all_standards_for_semantic_search`"+` to browse all standards
3. The topic might be indexed under a different name - try synonyms

**Tip:** Common indexed topics include: leakage current, software safety classification,
risk management, EMC, biocompatibility, essential performance, applied parts`, topic), nil
	}

	out := []string{fmt.Sprintf("# Topic: %s\n", xref.Topic)}

	if len(xref.Aliases) > 0 {
		out = append(out, fmt.Sprintf("**Also known as:** %s\n", strings.Join(xref.Aliases, ", ")))
	}

	out = append(out, "## Primary Location\n")
	out = append(out, fmt.Sprintf("**%s** - Section %s", s.shortTitleOr(xref.PrimaryStandard), xref.PrimarySection))
	if xref.PrimaryNote != "" {
		out = append(out, fmt.Sprintf("\n%s", xref.PrimaryNote))
	}
	out = append(out, "")

	if len(xref.AlsoSee) > 0 {
		out = append(out, "\n## Also See\n")
		for _, ref := range xref.AlsoSee {
			line := fmt.Sprintf("- **%s** - Section %s", s.shortTitleOr(ref.Standard), ref.Section)
			if ref.Note != "" {
				line += fmt.Sprintf(" (%s)", ref.Note)
			}
			out = append(out, line)
		}
	}

	out = append(out, fmt.Sprintf("\n\nUse `get_pdf_for_reading` with `%s` to read the primary source.", xref.PrimaryStandard))

	return strings.Join(out, "\n"), nil
}

// shortTitleOr resolves a standard id to its short title, falling back to
// the raw id for standards not in the library.
func (s *Service) shortTitleOr(id string) string {
	if std, err := s.lib.Standard(id); err == nil {
		return std.ShortTitle
	}
	return id
}

func (s *Service) findRelevantStandards(ctx context.Context, args map[string]any) (string, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return "", err
	}
	limit := intArg(args, "limit", search.DefaultLimit)

	results := search.Rank(s.lib.Standards(), query, limit)

	if len(results) == 0 {
		return fmt.Sprintf(`No direct keyword matches for '%s'.

This might be because the search terms differ from how the standards are indexed.

**Suggestion:** Use `+"`get_all_standards_for_semantic_search`"+` to see all available standards
and their descriptions - you can then determine which is most relevant based on your
understanding of the topic.`, query), nil
	}

	out := []string{fmt.Sprintf("# Standards Relevant to: %q\n", query)}

	for i, result := range results {
		std := result.Standard
		out = append(out,
			fmt.Sprintf("## %d. %s (relevance: %.1f)", i+1, std.ShortTitle, result.Score),
			fmt.Sprintf("**ID:** `%s`", std.ID),
			fmt.Sprintf("\n%s\n", std.Description),
		)

		if topics := search.MatchingTopics(query, std); len(topics) > 0 {
			if len(topics) > 5 {
				topics = topics[:5]
			}
			out = append(out, fmt.Sprintf("**Matching topics:** %s\n", strings.Join(topics, ", ")))
		}

		if sections := search.MatchingSections(query, std); len(sections) > 0 {
			out = append(out, "**Relevant sections:**")
			if len(sections) > 3 {
				sections = sections[:3]
			}
			for _, sec := range sections {
				out = append(out, fmt.Sprintf("- Section %s: %s", sec.Number, sec.Description))
			}
			out = append(out, "")
		}

		out = append(out, "---\n")
	}

	out = append(out, "\n**Tip:** Use `get_pdf_for_reading` with the standard ID to access the full document.")

	return strings.Join(out, "\n"), nil
}

func (s *Service) allStandardsForSemanticSearch(ctx context.Context, args map[string]any) (string, error) {
	if s.lib.Len() == 0 {
		return "No standards in library.", nil
	}

	out := []string{
		"# All Available Standards\n",
		"Review these descriptions to find which standard(s) are most relevant to your query.\n",
		"---\n",
	}

	for _, std := range s.sortedStandards() {
		out = append(out,
			fmt.Sprintf("## %s (`%s`)", std.ShortTitle, std.ID),
			fmt.Sprintf("\n**Title:** %s\n", std.Title),
			fmt.Sprintf("**Scope:** %s\n", std.Scope),
			fmt.Sprintf("**Description:** %s\n", std.Description),
		)

		out = append(out, "**Sections:**")
		for _, sec := range std.Sections {
			out = append(out, fmt.Sprintf("- %s: %s", sec.Number, sec.Description))
		}

		if len(std.Annexes) > 0 {
			out = append(out, "\n**Annexes:**")
			for _, annex := range std.Annexes {
				out = append(out, annexLine(annex, "relates to"))
			}
		}

		if len(std.KeyTables) > 0 {
			out = append(out, "\n**Key Tables:**")
			for _, table := range std.KeyTables {
				out = append(out, exhibitLine(table, "also"))
			}
		}

		out = append(out, fmt.Sprintf("\n**Key topics:** %s", strings.Join(std.KeyTopics, ", ")))

		if len(std.KeyTerms) > 0 {
			terms := std.KeyTerms
			if len(terms) > 10 {
				out = append(out, fmt.Sprintf("\n**Defined terms:** %s", strings.Join(terms[:10], ", ")))
				out = append(out, fmt.Sprintf("  ...and %d more", len(terms)-10))
			} else {
				out = append(out, fmt.Sprintf("\n**Defined terms:** %s", strings.Join(terms, ", ")))
			}
		}

		if _, ok := s.lib.PDFPath(std.ID); ok {
			out = append(out, "\n**PDF:** Available")
		} else {
			out = append(out, "\n**PDF:** Missing")
		}
		out = append(out, "\n---\n")
	}

	out = append(out, "\nOnce you identify the relevant standard(s), use `get_pdf_for_reading` to access the full document.")

	return strings.Join(out, "\n"), nil
}

func annexLine(annex library.Annex, relatedLabel string) string {
	status := "informative"
	if annex.Normative {
		status = "normative"
	}
	line := fmt.Sprintf("- %s (%s): %s", annex.ID, status, annex.Description)
	if len(annex.RelatedSections) > 0 {
		line += fmt.Sprintf(" [%s: %s]", relatedLabel, strings.Join(annex.RelatedSections, ", "))
	}
	return line
}

func exhibitLine(e library.Exhibit, relatedLabel string) string {
	var line string
	if e.Location != "" {
		line = fmt.Sprintf("- **%s** (Section %s): %s", e.ID, e.Location, e.Description)
	} else {
		line = fmt.Sprintf("- **%s:** %s", e.ID, e.Description)
	}
	if len(e.RelatedSections) > 0 {
		line += fmt.Sprintf(" [%s: %s]", relatedLabel, strings.Join(e.RelatedSections, ", "))
	}
	return line
}

func (s *Service) standardOverview(ctx context.Context, args map[string]any) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found. Available standards: %s",
			standardID, strings.Join(s.lib.IDs(), ", ")), nil
	}

	out := []string{
		fmt.Sprintf("# %s", std.ShortTitle),
		fmt.Sprintf("**Full Title:** %s", std.Title),
		fmt.Sprintf("**Organization:** %s", std.Organization),
		fmt.Sprintf("**Version/Year:** %s", std.Year),
		fmt.Sprintf("**Pages:** ~%d", std.Pages),
		"",
		"## Scope",
		std.Scope,
		"",
		"## Description",
		std.Description,
		"",
		"## Sections",
	}
	for _, sec := range std.Sections {
		out = append(out, fmt.Sprintf("- **%s:** %s", sec.Number, sec.Description))
	}
	out = append(out, "")

	if len(std.Annexes) > 0 {
		out = append(out, "## Annexes")
		for _, annex := range std.Annexes {
			status := "(informative)"
			if annex.Normative {
				status = "(normative)"
			}
			line := fmt.Sprintf("- **%s** %s: %s", annex.ID, status, annex.Description)
			if len(annex.RelatedSections) > 0 {
				line += fmt.Sprintf(" [relates to: %s]", strings.Join(annex.RelatedSections, ", "))
			}
			out = append(out, line)
		}
		out = append(out, "")
	}

	if len(std.KeyTables) > 0 {
		out = append(out, "## Key Tables")
		for _, table := range std.KeyTables {
			out = append(out, exhibitLine(table, "also"))
		}
		out = append(out, "")
	}

	if len(std.KeyFigures) > 0 {
		out = append(out, "## Key Figures")
		for _, figure := range std.KeyFigures {
			out = append(out, exhibitLine(figure, "also"))
		}
		out = append(out, "")
	}

	if len(std.KeyTerms) > 0 {
		out = append(out, "## Key Defined Terms")
		terms := std.KeyTerms
		if len(terms) > 15 {
			out = append(out, strings.Join(terms[:15], ", "))
			out = append(out, fmt.Sprintf("... and %d more terms", len(terms)-15))
		} else {
			out = append(out, strings.Join(terms, ", "))
		}
		out = append(out, "")
	}

	out = append(out, "## Key Topics (Searchable)")
	for i := 0; i < len(std.KeyTopics); i += 4 {
		end := i + 4
		if end > len(std.KeyTopics) {
			end = len(std.KeyTopics)
		}
		out = append(out, "- "+strings.Join(std.KeyTopics[i:end], ", "))
	}
	out = append(out, "")

	out = append(out, "## Related Standards")
	for _, rel := range std.RelatedStandards {
		out = append(out, fmt.Sprintf("- **%s** (%s)", rel.ID, rel.Relationship))
		if rel.Description != "" {
			out = append(out, fmt.Sprintf("  %s", rel.Description))
		}
	}
	out = append(out, "")

	if std.Notes != "" {
		out = append(out, "## Notes", std.Notes, "")
	}

	if path, ok := s.lib.PDFPath(standardID); ok {
		out = append(out, fmt.Sprintf("**PDF Available:** `%s`", path))
	} else {
		out = append(out, fmt.Sprintf("**PDF Not Found:** Add `%s` to `%s/`", std.Filename, s.lib.PDFDirectory))
	}

	return strings.Join(out, "\n"), nil
}

func (s *Service) findSection(ctx context.Context, args map[string]any) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}
	topic, err := stringArg(args, "topic")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found.", standardID), nil
	}

	hits := search.FindSections(std, topic)

	if len(hits) == 0 {
		out := []string{
			fmt.Sprintf("# Section Search: %q in %s\n", topic, std.ShortTitle),
			fmt.Sprintf("No exact section match found for '%s'.\n", topic),
			"**Available sections:**",
		}
		for _, sec := range std.Sections {
			out = append(out, fmt.Sprintf("- %s: %s", sec.Number, sec.Description))
		}
		out = append(out, "\nTry reading the full standard or searching with different keywords.")
		return strings.Join(out, "\n"), nil
	}

	out := []string{
		fmt.Sprintf("# Sections for %q in %s\n", topic, std.ShortTitle),
		"**Likely relevant sections:**\n",
	}
	for _, hit := range hits {
		out = append(out, fmt.Sprintf("- **Section %s:** %s", hit.ID, hit.Description))
	}
	out = append(out, fmt.Sprintf("\nUse `get_pdf_for_reading` with `%s` to read these sections.", standardID))

	return strings.Join(out, "\n"), nil
}

func (s *Service) findTable(ctx context.Context, args map[string]any) (string, error) {
	return s.findExhibit(args, "table", "Table",
		func(std *library.Standard) []library.Exhibit { return std.KeyTables },
		search.FindTables)
}

func (s *Service) findFigure(ctx context.Context, args map[string]any) (string, error) {
	return s.findExhibit(args, "figure", "Figure",
		func(std *library.Standard) []library.Exhibit { return std.KeyFigures },
		search.FindFigures)
}

// findExhibit is the shared handler body for find_table and find_figure;
// the two differ only in which collection they search and how results are
// labeled.
func (s *Service) findExhibit(
	args map[string]any,
	kind, label string,
	collection func(*library.Standard) []library.Exhibit,
	finder func(*library.Standard, string) []search.Hit,
) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}
	topic, err := stringArg(args, "topic")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found.", standardID), nil
	}

	exhibits := collection(std)
	if len(exhibits) == 0 {
		return strings.Join([]string{
			fmt.Sprintf("# %s Search: %q in %s\n", label, topic, std.ShortTitle),
			fmt.Sprintf("No %ss have been indexed for this standard.\n", kind),
			fmt.Sprintf("The standard may still contain relevant %ss - use `get_pdf_for_reading` to check the document directly.", kind),
		}, "\n"), nil
	}

	hits := finder(std, topic)

	if len(hits) == 0 {
		out := []string{
			fmt.Sprintf("# %s Search: %q in %s\n", label, topic, std.ShortTitle),
			fmt.Sprintf("No %ss directly matching '%s' found.\n", kind, topic),
			fmt.Sprintf("**Available %ss in this standard:**", kind),
		}
		for _, e := range exhibits {
			out = append(out, exhibitLine(e, "also"))
		}
		out = append(out, "\nUse `get_pdf_for_reading` to check the full document.")
		return strings.Join(out, "\n"), nil
	}

	out := []string{
		fmt.Sprintf("# %ss for %q in %s\n", label, topic, std.ShortTitle),
		fmt.Sprintf("**Likely relevant %ss:**\n", kind),
	}
	for _, hit := range hits {
		var line string
		if hit.Location != "" {
			line = fmt.Sprintf("- **%s** (Section %s): %s", hit.ID, hit.Location, hit.Description)
		} else {
			line = fmt.Sprintf("- **%s:** %s", hit.ID, hit.Description)
		}
		if len(hit.RelatedSections) > 0 {
			line += fmt.Sprintf("\n  Also referenced in: %s", strings.Join(hit.RelatedSections, ", "))
		}
		out = append(out, line)
	}
	out = append(out, fmt.Sprintf("\nUse `get_pdf_for_reading` with `%s` to view these %ss.", standardID, kind))

	return strings.Join(out, "\n"), nil
}

func (s *Service) findAnnex(ctx context.Context, args map[string]any) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}
	sectionOrTopic, err := stringArg(args, "section_or_topic")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found.", standardID), nil
	}

	if len(std.Annexes) == 0 {
		return strings.Join([]string{
			fmt.Sprintf("# Annex Search: %q in %s\n", sectionOrTopic, std.ShortTitle),
			"No annexes have been indexed for this standard.\n",
			"The standard may still contain annexes - use `get_pdf_for_reading` to check the document directly.",
		}, "\n"), nil
	}

	hits := search.FindAnnexes(std, sectionOrTopic)

	if len(hits) == 0 {
		out := []string{
			fmt.Sprintf("# Annex Search: %q in %s\n", sectionOrTopic, std.ShortTitle),
			fmt.Sprintf("No annexes directly related to '%s' found.\n", sectionOrTopic),
			"**Available annexes in this standard:**",
		}
		for _, annex := range std.Annexes {
			status := "(informative)"
			if annex.Normative {
				status = "(normative)"
			}
			line := fmt.Sprintf("- **%s** %s: %s", annex.ID, status, annex.Description)
			if len(annex.RelatedSections) > 0 {
				line += fmt.Sprintf(" [sections: %s]", strings.Join(annex.RelatedSections, ", "))
			}
			out = append(out, line)
		}
		return strings.Join(out, "\n"), nil
	}

	out := []string{fmt.Sprintf("# Annexes for %q in %s\n", sectionOrTopic, std.ShortTitle)}

	// Normative annexes first, then informative, each group in match order.
	var normative, informative []search.Hit
	for _, hit := range hits {
		if hit.Normative {
			normative = append(normative, hit)
		} else {
			informative = append(informative, hit)
		}
	}

	if len(normative) > 0 {
		out = append(out, "**Normative Annexes (required for compliance):**\n")
		for _, hit := range normative {
			out = append(out, annexHitLine(hit))
		}
		out = append(out, "")
	}

	if len(informative) > 0 {
		out = append(out, "**Informative Annexes (guidance/rationale):**\n")
		for _, hit := range informative {
			out = append(out, annexHitLine(hit))
		}
		out = append(out, "")
	}

	out = append(out, fmt.Sprintf("Use `get_pdf_for_reading` with `%s` to view these annexes.", standardID))

	return strings.Join(out, "\n"), nil
}

func annexHitLine(hit search.Hit) string {
	line := fmt.Sprintf("- **%s**: %s", hit.ID, hit.Description)
	if len(hit.RelatedSections) > 0 {
		line += fmt.Sprintf("\n  Related sections: %s", strings.Join(hit.RelatedSections, ", "))
	}
	return line
}

func (s *Service) relatedStandards(ctx context.Context, args map[string]any) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found.", standardID), nil
	}

	out := []string{fmt.Sprintf("# Standards Related to %s\n", std.ShortTitle)}

	if len(std.RelatedStandards) == 0 {
		out = append(out, "No related standards listed.")
		return strings.Join(out, "\n"), nil
	}

	for _, rel := range std.RelatedStandards {
		target, err := s.lib.Standard(rel.ID)
		if err != nil {
			// Dangling edge: the target is declared but not in the library.
			out = append(out,
				fmt.Sprintf("## %s (%s)", rel.ID, rel.Relationship),
				"(Not in library - you may need to obtain this standard)\n",
				"---\n",
			)
			continue
		}

		out = append(out,
			fmt.Sprintf("## %s (%s)", target.ShortTitle, rel.Relationship),
			fmt.Sprintf("**ID:** `%s`", rel.ID),
			fmt.Sprintf("**Title:** %s", target.Title),
			fmt.Sprintf("\n%s\n", target.Description),
		)
		if rel.Description != "" {
			out = append(out, fmt.Sprintf("Relationship: %s\n", rel.Description))
		}
		if _, ok := s.lib.PDFPath(rel.ID); ok {
			out = append(out, "PDF available\n")
		}
		out = append(out, "---\n")
	}

	return strings.Join(out, "\n"), nil
}

func (s *Service) pdfForReading(ctx context.Context, args map[string]any) (string, error) {
	standardID, err := stringArg(args, "standard_id")
	if err != nil {
		return "", err
	}

	std, err := s.lib.Standard(standardID)
	if err != nil {
		return fmt.Sprintf("Standard '%s' not found.", standardID), nil
	}

	out := []string{fmt.Sprintf("# PDF Access: %s\n", std.ShortTitle)}

	path, ok := s.lib.PDFPath(standardID)
	if !ok {
		out = append(out,
			"**PDF Not Found**",
			fmt.Sprintf("\nExpected file: `%s/%s`", s.lib.PDFDirectory, std.Filename),
			"\nPlease add the PDF file to this location and restart the server.",
		)
		return strings.Join(out, "\n"), nil
	}

	out = append(out,
		fmt.Sprintf("**File:** `%s`", path),
		fmt.Sprintf("**Size:** ~%d pages", std.Pages),
		"",
		"## Quick Reference",
		fmt.Sprintf("\n%s", std.Description),
		"\n**Sections:**",
	)
	sections := std.Sections
	preview := sections
	if len(preview) > 5 {
		preview = preview[:5]
	}
	for _, sec := range preview {
		out = append(out, fmt.Sprintf("- %s: %s", sec.Number, sec.Description))
	}
	if len(sections) > 5 {
		out = append(out, fmt.Sprintf("- ... and %d more sections", len(sections)-5))
	}

	return strings.Join(out, "\n"), nil
}
