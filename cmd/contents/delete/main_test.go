package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/prakan/go-content-admin/cmd/contents/internal/bootstrap"
	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/internal/payload"
)

type stubGateway struct {
	deleteCalls    int
	deleteCategory domain.Category
	deleteID       string
}

func (s *stubGateway) ListContents(context.Context, domain.Category, int, int) (gateway.ContentPage, error) {
	return gateway.ContentPage{}, nil
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

func (s *stubGateway) DeleteContent(_ context.Context, category domain.Category, id string) error {
	s.deleteCalls++
	s.deleteCategory = category
	s.deleteID = id
	return nil
}

func TestRunDeleteUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	gw := &stubGateway{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Gateway: gw, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runDelete([]string{
		"-category", "PROMOTION",
		"-id", "p-7",
		"-yes",
	}, &out); err != nil {
		t.Fatalf("runDelete returned error: %v", err)
	}

	if gw.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", gw.deleteCalls)
	}
	if gw.deleteCategory != domain.CategoryPromotion || gw.deleteID != "p-7" {
		t.Fatalf("deleted %s %s, want PROMOTION p-7", gw.deleteCategory, gw.deleteID)
	}
}

func TestRunDeleteRequiresConfirmation(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	gw := &stubGateway{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Gateway: gw, Logger: logging.NoOp()}, nil
	}

	var out bytes.Buffer
	if err := runDelete([]string{
		"-category", "PROMOTION",
		"-id", "p-7",
	}, &out); err == nil {
		t.Fatal("expected an error without -yes")
	}
	if gw.deleteCalls != 0 {
		t.Fatalf("delete should not run without confirmation, got %d calls", gw.deleteCalls)
	}
}
