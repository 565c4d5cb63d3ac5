// Package remote is the client for the spreadsheet versioning backend.
//
// The backend stores uploaded workbooks in a git repository and routes each
// upload through a pull request that approvers accept or reject. [Client]
// covers commit history, approvals, collaborators and uploads. Change payloads
// are returned as raw JSON so that the caller's normalizer sees exactly what
// the backend sent.
//
// [Source] is the narrow interface for fetching change payloads; wrap it with
// [NewCachedSource] to serve repeat fetches from the local cache.
package remote
