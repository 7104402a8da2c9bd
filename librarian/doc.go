// Package librarian exposes the standards library as MCP tools.
//
// A Service binds a loaded library.Library to the registry: each tool
// handler runs one pure matching or rendering pass over the immutable store
// and returns Markdown text. PDFs that exist on disk are additionally
// published as MCP resources under standards://<id>/pdf.
//
// Unknown standard ids and zero-match queries are rendered as guidance
// text, never surfaced as protocol errors; only a missing required
// argument fails the call.
package librarian
