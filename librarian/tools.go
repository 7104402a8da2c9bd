package librarian

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/standardslibrarian/registry"
)

type toolBinding struct {
	tool    mcp.Tool
	handler registry.ToolHandler
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func standardIDProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Standard ID (e.g., 'IEC_60601-1', 'ISO_14971')",
	}
}

// bindings returns every librarian tool with its handler, in the order the
// server advertises them.
func (s *Service) bindings() []toolBinding {
	return []toolBinding{
		{
			tool: mcp.Tool{
				Name: "list_available_standards",
				Description: `List all regulatory standards available in the library.

Use this first to see what standards you have access to.
Returns the ID, title, and brief description of each standard.`,
				InputSchema: objectSchema(map[string]any{}),
			},
			handler: s.listStandards,
		},
		{
			tool: mcp.Tool{
				Name: "lookup_topic",
				Description: `Look up a topic directly in the cross-reference index.

This is the FASTEST way to find where a topic is covered. Returns the primary
standard and section, plus other relevant locations.

USE THIS FIRST when you know what topic you're looking for. Only fall back to
find_relevant_standards if the topic isn't in the cross-reference index.

Examples:
- "leakage current" -> IEC 60601-1 Section 8.7, also see Annex F
- "software safety classification" -> IEC 62304 Section 4.3
- "risk management" -> ISO 14971 Section 4-10`,
				InputSchema: objectSchema(map[string]any{
					"topic": map[string]any{
						"type":        "string",
						"description": "The topic to look up (e.g., 'leakage current', 'software classification', 'EMC')",
					},
				}, "topic"),
			},
			handler: s.lookupTopic,
		},
		{
			tool: mcp.Tool{
				Name: "find_relevant_standards",
				Description: `Find which standard(s) are most relevant for a topic or question.

NOTE: Try lookup_topic FIRST - it's faster and more precise. Use this tool as a
FALLBACK when the topic isn't in the cross-reference index.

This searches through all standards' metadata using keyword matching.
Returns ranked list of relevant standards with explanations of why they match.

Examples:
- "patient leakage current limits" -> IEC 60601-1
- "software safety classification" -> IEC 62304
- "implantable device requirements" -> ISO 14708-1
- "risk analysis process" -> ISO 14971`,
				InputSchema: objectSchema(map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The topic, question, or requirement you're looking for",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of standards to return (default: 3)",
						"default":     3,
					},
				}, "query"),
			},
			handler: s.findRelevantStandards,
		},
		{
			tool: mcp.Tool{
				Name: "get_all_standards_for_semantic_search",
				Description: `Get descriptions of ALL available standards so you can determine which is most relevant.

Use this when you need to find which standard covers a topic, and the topic might use
different terminology than what's in the index. This returns full descriptions of all
standards so YOU can use your semantic understanding to find the right one.

For example, if someone asks about "creepage distances" or "dielectric strength",
this will return the IEC 60601-1 description which mentions "electrical safety" -
and you'll understand these are related.`,
				InputSchema: objectSchema(map[string]any{}),
			},
			handler: s.allStandardsForSemanticSearch,
		},
		{
			tool: mcp.Tool{
				Name: "get_standard_overview",
				Description: `Get detailed information about a specific standard.

Returns the standard's scope, what topics it covers, its section structure,
and related standards. Use this to understand what's in a standard before
reading the full PDF.`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
				}, "standard_id"),
			},
			handler: s.standardOverview,
		},
		{
			tool: mcp.Tool{
				Name: "find_section",
				Description: `Find which section of a standard covers a specific topic.

Use this to narrow down where to look within a standard.
Returns the relevant section number(s) and descriptions.`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
					"topic": map[string]any{
						"type":        "string",
						"description": "The topic you're looking for",
					},
				}, "standard_id", "topic"),
			},
			handler: s.findSection,
		},
		{
			tool: mcp.Tool{
				Name: "find_table",
				Description: `Find which table in a standard contains specific information.

Use this when looking for specific values, limits, or classifications that are
typically found in tables. Returns matching tables with their descriptions.

Examples:
- "leakage current limits" -> Table 3 in IEC 60601-1
- "software safety classification" -> Table in IEC 62304
- "applied part classification" -> Table 1 in IEC 60601-1`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
					"topic": map[string]any{
						"type":        "string",
						"description": "What information you're looking for",
					},
				}, "standard_id", "topic"),
			},
			handler: s.findTable,
		},
		{
			tool: mcp.Tool{
				Name: "find_figure",
				Description: `Find which figure in a standard illustrates specific information.

Use this when looking for diagrams, flowcharts, test circuits, or visual references.
Returns matching figures with their descriptions and locations.

Examples:
- "test circuit" -> Figure F.1 in IEC 60601-1
- "risk management process" -> Figure 1 in ISO 14971
- "software development" -> Figure 1 in IEC 62304`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
					"topic": map[string]any{
						"type":        "string",
						"description": "What you're looking for (e.g., 'test circuit', 'flowchart', 'classification')",
					},
				}, "standard_id", "topic"),
			},
			handler: s.findFigure,
		},
		{
			tool: mcp.Tool{
				Name: "find_annex",
				Description: `Find annexes in a standard that relate to a specific section or topic.

Use this when:
- You found a requirement and want supporting test methods or guidance
- You want to know what normative annexes apply to a section
- You're looking for informative rationale or examples

Returns matching annexes with their normative status and related sections.`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
					"section_or_topic": map[string]any{
						"type":        "string",
						"description": "Section number (e.g., '8.7') or topic (e.g., 'leakage current')",
					},
				}, "standard_id", "section_or_topic"),
			},
			handler: s.findAnnex,
		},
		{
			tool: mcp.Tool{
				Name: "get_related_standards",
				Description: `Get standards that are related to a given standard.

Useful for understanding the regulatory ecosystem and finding additional
relevant requirements.`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
				}, "standard_id"),
			},
			handler: s.relatedStandards,
		},
		{
			tool: mcp.Tool{
				Name: "get_pdf_for_reading",
				Description: `Get the PDF file for a standard so you can read it directly.

Use this when you need to read the actual standard content.
Returns the file path and basic info about the PDF.`,
				InputSchema: objectSchema(map[string]any{
					"standard_id": standardIDProperty(),
				}, "standard_id"),
			},
			handler: s.pdfForReading,
		},
	}
}
