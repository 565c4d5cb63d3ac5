// Package server exposes a preview session over HTTP for browser front ends.
//
// Routes live under /api. Reads return the current [view.View], its summary
// or the raw records; writes change the filter, expansion or pagination, or
// load a new change payload, and answer with the updated View. Requests are
// served one at a time against the shared session.
package server
