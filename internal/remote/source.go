package remote

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dshills/sheetdiff/internal/cache"
)

// Source fetches raw change payloads.
type Source interface {
	CommitChanges(ctx context.Context, sha string) (json.RawMessage, error)
	PRChanges(ctx context.Context, number int) (json.RawMessage, error)
}

// API is the full backend surface.
type API interface {
	Source
	Commits(ctx context.Context, search string) ([]Commit, error)
	Commit(ctx context.Context, sha string) (*CommitDetails, error)
	PendingApprovals(ctx context.Context) ([]PullRequest, error)
	SentApprovals(ctx context.Context) ([]PullRequest, error)
	Approve(ctx context.Context, number int, comment string) (*Decision, error)
	Reject(ctx context.Context, number int, comment string) (*Decision, error)
	Collaborators(ctx context.Context) ([]Collaborator, error)
	Upload(ctx context.Context, req UploadRequest) (json.RawMessage, error)
}

// CachedSource serves change payloads from a cache before asking the backend.
type CachedSource struct {
	src    Source
	cache  *cache.Cache
	logger *slog.Logger
}

// NewCachedSource wraps src. A nil or disabled cache passes every call
// through.
func NewCachedSource(src Source, c *cache.Cache, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{src: src, cache: c, logger: logger}
}

// CommitChanges implements Source.
func (s *CachedSource) CommitChanges(ctx context.Context, sha string) (json.RawMessage, error) {
	return s.fetch(cache.CommitKey(sha), func() (json.RawMessage, error) {
		return s.src.CommitChanges(ctx, sha)
	})
}

// PRChanges implements Source. Pull requests can gain commits, so a
// cached payload may lag the backend until its TTL runs out.
func (s *CachedSource) PRChanges(ctx context.Context, number int) (json.RawMessage, error) {
	return s.fetch(cache.PRKey(number), func() (json.RawMessage, error) {
		return s.src.PRChanges(ctx, number)
	})
}

func (s *CachedSource) fetch(key string, load func() (json.RawMessage, error)) (json.RawMessage, error) {
	if s.cache == nil || !s.cache.Enabled() {
		return load()
	}
	if payload, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return payload, nil
	}
	payload, err := load()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(key, payload); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err.Error())
	}
	return payload, nil
}
