// Package output formats change previews for display or machine consumption.
//
// Three formats are supported:
//   - text:     terminal output with styled cells and one table per sheet (default)
//   - markdown: PR-comment-friendly with a collapsible section per file and sheet
//   - json:     the full structured view
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*view.View]. [WriteView] handles
// destination selection.
package output
