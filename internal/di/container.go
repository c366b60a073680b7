package di

import (
	"net/http"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/prakan/go-content-admin/internal/adapters/memory"
	"github.com/prakan/go-content-admin/internal/adapters/noop"
	"github.com/prakan/go-content-admin/internal/appstate"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/listview"
	"github.com/prakan/go-content-admin/internal/logging/gologger"
	"github.com/prakan/go-content-admin/internal/runtimeconfig"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Container wires module dependencies. Memory-backed adapters are the
// defaults; hosts opt into bun persistence and repository caching.
type Container struct {
	Config runtimeconfig.Config

	httpClient     *http.Client
	loggerProvider interfaces.LoggerProvider
	cacheProvider  interfaces.CacheProvider

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	stateStore appstate.Store

	gatewayClient *gateway.Client
	listSvc       *listview.Service
	state         *appstate.State
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithHTTPClient overrides the HTTP client used by the gateway.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithLoggerProvider overrides the default logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCacheProvider overrides the paged summary cache.
func WithCacheProvider(cache interfaces.CacheProvider) Option {
	return func(c *Container) {
		c.cacheProvider = cache
	}
}

// WithBunDB enables bun-backed app-state persistence.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache services used by the bun store.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithStateStore overrides the app-state store directly.
func WithStateStore(store appstate.Store) Option {
	return func(c *Container) {
		c.stateStore = store
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureStateStore()
	c.configureServices()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	format := c.Config.Logging.Format
	// The "console" provider always renders human-readable output; only the
	// "gologger" provider honours the configured format.
	if strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), "console") {
		format = "console"
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    format,
		AddSource: c.Config.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if c.cacheProvider == nil {
		if c.Config.Cache.Enabled {
			c.cacheProvider = memory.NewCache()
		} else {
			c.cacheProvider = noop.Cache()
		}
	}

	if !c.Config.Cache.Enabled || c.bunDB == nil {
		return
	}
	if c.cacheService == nil {
		repoCfg := repocache.DefaultConfig()
		if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
			repoCfg.TTL = ttl
		}
		service, err := repocache.NewCacheService(repoCfg)
		if err == nil {
			c.cacheService = service
		}
	}
	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureStateStore() {
	if c.stateStore != nil {
		return
	}
	if c.Config.State.Provider == "bun" && c.bunDB != nil {
		c.stateStore = appstate.NewBunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return
	}
	c.stateStore = appstate.NewMemoryStore()
}

func (c *Container) configureServices() {
	gatewayOpts := []gateway.Option{
		gateway.WithLoggerProvider(c.loggerProvider),
	}
	if c.httpClient != nil {
		gatewayOpts = append(gatewayOpts, gateway.WithHTTPClient(c.httpClient))
	} else if timeout := c.Config.Gateway.Timeout; timeout > 0 {
		gatewayOpts = append(gatewayOpts, gateway.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	c.gatewayClient = gateway.NewClient(c.Config.Gateway.BaseURL, gatewayOpts...)

	listOpts := []listview.ServiceOption{
		listview.WithCacheProvider(c.cacheProvider),
		listview.WithLoggerProvider(c.loggerProvider),
	}
	if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
		listOpts = append(listOpts, listview.WithCacheTTL(ttl))
	}
	c.listSvc = listview.NewService(c.gatewayClient, listOpts...)

	c.state = appstate.New(c.stateStore, appstate.WithLoggerProvider(c.loggerProvider))
}

// Gateway exposes the configured REST client.
func (c *Container) Gateway() *gateway.Client {
	return c.gatewayClient
}

// ListService exposes the configured list service.
func (c *Container) ListService() *listview.Service {
	return c.listSvc
}

// AppState exposes the configured application state.
func (c *Container) AppState() *appstate.State {
	return c.state
}

// LoggerProvider exposes the configured logger provider, which may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// CacheProvider exposes the configured summary cache.
func (c *Container) CacheProvider() interfaces.CacheProvider {
	return c.cacheProvider
}

// CacheTTL reports the configured summary cache TTL.
func (c *Container) CacheTTL() time.Duration {
	return c.Config.Cache.DefaultTTL
}
