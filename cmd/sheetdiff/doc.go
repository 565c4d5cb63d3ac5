// Sheetdiff is a CLI for previewing and approving cell-level spreadsheet changes.
//
// It renders change collections as a file/sheet hierarchy with per-cell
// styling, and drives the upload and approval workflow of the spreadsheet
// versioning backend.
//
// Usage:
//
//	sheetdiff preview changes.json          # render a local change collection
//	sheetdiff preview - --format markdown   # read changes from stdin
//	sheetdiff commits --search budget       # list commit history
//	sheetdiff pr 42 --filter modified       # preview a pull request
//	sheetdiff approve 42 --comment "lgtm"   # approve it
//	sheetdiff serve changes.json            # interactive preview API
package main
