package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	admin "github.com/prakan/go-content-admin"
	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/domain"
	"github.com/prakan/go-content-admin/internal/di"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/internal/payload"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

// Options captures configuration for content CLI bootstraps.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	CacheEnabled   bool
	Verbose        bool
	LoggerProvider interfaces.LoggerProvider
}

// Gateway is the REST client surface the CLI tools use.
type Gateway interface {
	ListContents(ctx context.Context, category domain.Category, page, pageSize int) (gateway.ContentPage, error)
	GetContent(ctx context.Context, id string) (content.Record, error)
	CreateContent(ctx context.Context, category domain.Category, p *payload.Payload) error
	UpdateContent(ctx context.Context, category domain.Category, id string, p *payload.Payload) error
	DeleteContent(ctx context.Context, category domain.Category, id string) error
}

// Module wraps the admin module and the configured gateway/logger.
type Module struct {
	Module  *admin.Module
	Gateway Gateway
	Logger  interfaces.Logger
}

// BuildModule constructs an admin module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := admin.DefaultConfig()
	cfg.Gateway.BaseURL = strings.TrimSpace(opts.BaseURL)
	if opts.Timeout > 0 {
		cfg.Gateway.Timeout = opts.Timeout
	}
	cfg.Cache.Enabled = opts.CacheEnabled
	if opts.Verbose {
		cfg.Features.Logger = true
		cfg.Logging.Level = "debug"
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := admin.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise admin module: %w", err)
	}

	logger := logging.GatewayLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Gateway: module.Gateway(),
		Logger:  logger,
	}, nil
}

// ParseFilter converts a CLI category value into a list filter. ALL is
// accepted alongside the concrete categories.
func ParseFilter(value string) (domain.Category, error) {
	category := domain.ParseCategory(value)
	if !category.ValidFilter() {
		return "", fmt.Errorf("unknown category %q (expected BANNER, PROMOTION, INSURANCE, SUIT_INSURANCE or ALL)", value)
	}
	return category, nil
}

// ParseCategory converts a CLI category value into a concrete category; the
// ALL filter is rejected.
func ParseCategory(value string) (domain.Category, error) {
	category := domain.ParseCategory(value)
	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q (expected BANNER, PROMOTION, INSURANCE or SUIT_INSURANCE)", value)
	}
	return category, nil
}
