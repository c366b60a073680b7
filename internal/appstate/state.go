package appstate

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Persisted setting keys. Fixed: the public site operators' existing data
// lives under these names.
const (
	sidebarKey  = "sidebar_open"
	categoryKey = "content_category"
)

// Startup defaults, applied whenever a key is missing or its stored value
// does not parse.
const (
	defaultSidebarOpen = true
	defaultCategory    = domain.CategoryAll
)

// Option configures a State.
type Option func(*State)

// WithLoggerProvider wires structured logging for load and persist outcomes.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *State) {
		s.logger = logging.StateLogger(provider)
	}
}

// State is the explicit application-state object for the two persisted UI
// settings: the sidebar-open flag and the last selected category filter.
// Reads happen once at Load; every mutation writes through to the store.
// Safe for concurrent use.
type State struct {
	store  Store
	logger interfaces.Logger

	mu          sync.RWMutex
	sidebarOpen bool
	category    domain.Category
}

// New builds a State over a setting store. Call Load before first use.
func New(store Store, opts ...Option) *State {
	s := &State{
		store:       store,
		logger:      logging.NoOp(),
		sidebarOpen: defaultSidebarOpen,
		category:    defaultCategory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted settings, falling back to defaults for missing or
// corrupt values. Store failures other than a miss are returned.
func (s *State) Load(ctx context.Context) error {
	sidebarOpen := defaultSidebarOpen
	raw, err := s.store.Get(ctx, sidebarKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return err
	default:
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			s.logger.Warn("appstate.sidebar.corrupt", "value", raw)
			parsed = defaultSidebarOpen
		}
		sidebarOpen = parsed
	}

	category := defaultCategory
	raw, err = s.store.Get(ctx, categoryKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
	case err != nil:
		return err
	default:
		parsed := domain.ParseCategory(raw)
		if !parsed.ValidFilter() {
			s.logger.Warn("appstate.category.corrupt", "value", raw)
			parsed = defaultCategory
		}
		category = parsed
	}

	s.mu.Lock()
	s.sidebarOpen = sidebarOpen
	s.category = category
	s.mu.Unlock()

	s.logger.Debug("appstate.loaded", "sidebar_open", sidebarOpen, "category", string(category))
	return nil
}

// SidebarOpen reports the sidebar flag.
func (s *State) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// SetSidebarOpen updates and persists the sidebar flag.
func (s *State) SetSidebarOpen(ctx context.Context, open bool) error {
	if err := s.store.Set(ctx, sidebarKey, strconv.FormatBool(open)); err != nil {
		return err
	}
	s.mu.Lock()
	s.sidebarOpen = open
	s.mu.Unlock()
	return nil
}

// ToggleSidebar flips and persists the sidebar flag.
func (s *State) ToggleSidebar(ctx context.Context) error {
	return s.SetSidebarOpen(ctx, !s.SidebarOpen())
}

// Category reports the last selected category filter.
func (s *State) Category() domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// SetCategory updates and persists the category filter.
func (s *State) SetCategory(ctx context.Context, category domain.Category) error {
	if !category.ValidFilter() {
		return errors.New("appstate: invalid category filter " + string(category))
	}
	if err := s.store.Set(ctx, categoryKey, string(category)); err != nil {
		return err
	}
	s.mu.Lock()
	s.category = category
	s.mu.Unlock()
	return nil
}
