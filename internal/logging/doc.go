// Package logging builds the process logger.
//
// [New] returns a log/slog logger writing text or JSON records at a level
// named in configuration (debug, info, warn or error). Error attributes are
// written as their message only.
package logging
