// Package cache provides a file-based cache for change payloads fetched from
// the backend.
//
// Entries are keyed by a SHA-256 hash of a selector such as "commit:<sha>" or
// "pr:<n>" (see [CommitKey] and [PRKey]). Each entry stores the raw JSON
// payload with a creation timestamp and a TTL in seconds. Expired entries are
// removed on read and counted by [Cache.GetStats].
//
// The default cache directory is $XDG_CACHE_HOME/sheetdiff (or the
// OS-appropriate equivalent).
package cache
