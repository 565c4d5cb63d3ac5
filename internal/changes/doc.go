// Package changes holds the cell-level change records produced by comparing
// two spreadsheet revisions, and the pure transformations over them.
//
// [Normalize] coerces whatever the backend returned into a flat []Record
// without ever failing. [Apply] reduces that slice by change type, [Build]
// groups it into a file → sheet → rows [Hierarchy] and [Summarize] counts it.
// Summaries are always taken over the unfiltered slice.
package changes
