// Package cli wires together the Cobra command tree for the sheetdiff binary.
//
// It defines the root command and all subcommands (preview, commits, commit,
// pending, sent, pr, approve, reject, collaborators, upload, serve, config,
// cache, version), binds flags, reads configuration, drives a preview
// session, and returns deterministic exit codes.
package cli
