package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prakan/go-content-admin/cmd/contents/internal/bootstrap"
	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/internal/payload"
)

type stubGateway struct {
	listCalls    int
	listCategory domain.Category
	listPage     int
	listPageSize int
	page         gateway.ContentPage
}

func (s *stubGateway) ListContents(_ context.Context, category domain.Category, page, pageSize int) (gateway.ContentPage, error) {
	s.listCalls++
	s.listCategory = category
	s.listPage = page
	s.listPageSize = pageSize
	return s.page, nil
}

func (s *stubGateway) GetContent(context.Context, string) (content.Record, error) {
	return content.Record{}, nil
}

func (s *stubGateway) CreateContent(context.Context, domain.Category, *payload.Payload) error {
	return nil
}

func (s *stubGateway) UpdateContent(context.Context, domain.Category, string, *payload.Payload) error {
	return nil
}

func (s *stubGateway) DeleteContent(context.Context, domain.Category, string) error {
	return nil
}

func TestRunListPrintsSummaries(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	gw := &stubGateway{
		page: gateway.ContentPage{
			Items: []content.Summary{
				{ID: "b-1", Title: "Spring banner", Status: domain.StatusActive, Category: domain.CategoryBanner},
			},
			Meta: gateway.PageMeta{Page: 0, PageSize: 10, TotalPage: 1, TotalRow: 1},
		},
	}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Gateway: gw, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runList([]string{"-category", "BANNER", "-page", "0", "-page-size", "10"}, &out); err != nil {
		t.Fatalf("runList returned error: %v", err)
	}

	if gw.listCalls != 1 {
		t.Fatalf("expected one list call, got %d", gw.listCalls)
	}
	if gw.listCategory != domain.CategoryBanner {
		t.Fatalf("expected BANNER filter, got %s", gw.listCategory)
	}
	if !strings.Contains(out.String(), "Spring banner") {
		t.Fatalf("output missing row title:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "page 1 of 1 (1 records)") {
		t.Fatalf("output missing paging line:\n%s", out.String())
	}
}

func TestRunListRejectsUnknownCategory(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	called := false
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		called = true
		return nil, nil
	}

	var out bytes.Buffer
	if err := runList([]string{"-category", "WIDGETS"}, &out); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
	if called {
		t.Fatal("module should not be built when the category is invalid")
	}
}
