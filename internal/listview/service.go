package listview

import (
	"context"
	"fmt"
	"sync"
	"time"

	contentscmd "github.com/prakan/go-content-admin/internal/commands/contents"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

const defaultCacheTTL = 5 * time.Minute

// DefaultPageSizeOptions are offered when the backend paging block does not
// supply its own.
var DefaultPageSizeOptions = []int{10, 20, 50}

// Backend is the slice of the gateway the list view needs.
type Backend interface {
	ListContents(ctx context.Context, category domain.Category, page, pageSize int) (gateway.ContentPage, error)
	DeleteContent(ctx context.Context, category domain.Category, id string) error
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCacheProvider wires the paged summary cache. Defaults to no caching.
func WithCacheProvider(cache interfaces.CacheProvider) ServiceOption {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithLoggerProvider wires structured logging for fetch and delete outcomes.
func WithLoggerProvider(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *Service) {
		s.logger = logging.ListLogger(provider)
	}
}

// WithCacheTTL overrides how long cached pages stay valid.
func WithCacheTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// Service fetches paged content summaries through a shared cache and owns the
// invalidation rule: any confirmed mutation drops the mutated category's pages
// and the ALL filter's pages, forcing a refetch instead of patching in place.
// Safe for concurrent use.
type Service struct {
	backend Backend
	remove  *contentscmd.DeleteContentHandler
	cache   interfaces.CacheProvider
	logger  interfaces.Logger
	ttl     time.Duration

	// keys tracks which cache keys exist per category filter so invalidation
	// does not need to enumerate page/size combinations.
	mu   sync.Mutex
	keys map[domain.Category][]string
}

// NewService builds a list service over the gateway backend.
func NewService(backend Backend, opts ...ServiceOption) *Service {
	s := &Service{
		backend: backend,
		logger:  logging.NoOp(),
		ttl:     defaultCacheTTL,
		keys:    map[domain.Category][]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	// Built after options so the handler shares the resolved logger.
	s.remove = contentscmd.NewDeleteContentHandler(backend, s.logger)
	return s
}

// Fetch returns one page of summaries, from cache when possible.
func (s *Service) Fetch(ctx context.Context, category domain.Category, page, pageSize int) (gateway.ContentPage, error) {
	key := pageKey(category, page, pageSize)
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, key); err == nil && hit != nil {
			if cached, ok := hit.(gateway.ContentPage); ok {
				s.logger.Debug("list.fetch.cache_hit", "key", key)
				return cached, nil
			}
		}
	}

	fetched, err := s.backend.ListContents(ctx, category, page, pageSize)
	if err != nil {
		s.logger.Error("list.fetch.failed", "category", string(category), "error", err)
		return gateway.ContentPage{}, err
	}
	if len(fetched.Meta.PageSizeOptions) == 0 {
		fetched.Meta.PageSizeOptions = append([]int(nil), DefaultPageSizeOptions...)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, fetched, s.ttl); err == nil {
			s.mu.Lock()
			s.keys[category] = append(s.keys[category], key)
			s.mu.Unlock()
		}
	}
	return fetched, nil
}

// Delete removes a record through the delete command, then drops the cached
// pages for that category and for the ALL filter.
func (s *Service) Delete(ctx context.Context, category domain.Category, recordID string) error {
	cmd := contentscmd.DeleteContentCommand{Category: category, RecordID: recordID}
	if err := s.remove.Execute(ctx, cmd); err != nil {
		s.logger.Warn("list.delete.failed", "category", string(category), "id", recordID, "error", err)
		return err
	}
	s.Invalidate(ctx, category)
	s.logger.Info("list.delete.success", "category", string(category), "id", recordID)
	return nil
}

// Invalidate drops cached pages for the category and for the ALL filter.
func (s *Service) Invalidate(ctx context.Context, category domain.Category) {
	s.dropKeys(ctx, category)
	if category != domain.CategoryAll {
		s.dropKeys(ctx, domain.CategoryAll)
	}
}

func (s *Service) dropKeys(ctx context.Context, category domain.Category) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	keys := s.keys[category]
	delete(s.keys, category)
	s.mu.Unlock()

	for _, key := range keys {
		_ = s.cache.Delete(ctx, key)
	}
}

func pageKey(category domain.Category, page, pageSize int) string {
	return fmt.Sprintf("contents:%s:%d:%d", category, page, pageSize)
}
