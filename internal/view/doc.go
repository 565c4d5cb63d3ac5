// Package view holds the presentation state of one change collection and
// assembles what a renderer needs to draw it.
//
// A [Session] owns the normalized records, the active filter, the
// [Expansion] of files and sheets and the [Pagination] of sheet rows. Loading
// a new collection resets expansion and pagination; changing the filter does
// not. [Session.View] projects the current state into a [View], a plain tree
// of files, sheets and formatted rows ready to be written out.
//
// A Session is not safe for concurrent use.
package view
