// Package redact scrubs credentials from text that may end up in error
// messages or logs, such as response bodies returned by the backend.
//
// Detection uses regex heuristics for common token shapes (bearer headers,
// JWTs, GitHub tokens, and key or token assignments in JSON and form
// syntax). Callers can also pass literal secrets they know about, such as
// the configured API token.
package redact
