package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/payload"
)

func TestListContentsSendsFilterAndDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("category") != "BANNER" || q.Get("page") != "2" || q.Get("pageSize") != "10" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"data": {
				"contents": [
					{"id": "c-1", "title": "Spring banner", "status": "ACTIVE", "category": "BANNER", "categoryRecordId": "b-1"}
				],
				"paging": {"page": 2, "pageSize": 10, "pageSizeOptions": [10, 20, 50], "totalPage": 3, "totalRow": 25}
			}
		}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	page, err := client.ListContents(context.Background(), domain.CategoryBanner, 2, 10)
	if err != nil {
		t.Fatalf("list contents: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].CategoryRecordID != "b-1" {
		t.Fatalf("unexpected items %+v", page.Items)
	}
	if page.Meta.TotalRow != 25 || page.Meta.TotalPage != 3 {
		t.Fatalf("unexpected paging %+v", page.Meta)
	}
}

func TestListContentsRejectsUnknownFilter(t *testing.T) {
	t.Parallel()

	client := gateway.NewClient("http://backend.invalid")
	_, err := client.ListContents(context.Background(), domain.Category("BOGUS"), 0, 10)
	if !errors.Is(err, content.ErrUnknownCategory) {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestGetContentDecodesDiscriminatedRecord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/contents/c-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"id": "c-1",
				"title": "Spring banner",
				"status": "ACTIVE",
				"category": "BANNER",
				"effectiveFrom": "2026-01-01T00:00:00",
				"effectiveTo": "2026-12-31T00:00:00",
				"coverImage": "uploads/cover.png",
				"coverHyperLink": "https://example.com",
				"contents": [{"id": "i-1", "contentImage": "uploads/one.png", "contentHyperLink": "https://example.com/one"}]
			}
		}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	record, err := client.GetContent(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("get content: %v", err)
	}
	banner, ok := record.Banner()
	if !ok {
		t.Fatalf("expected banner variant, got category %s", record.Category())
	}
	if banner.CoverImagePath != "uploads/cover.png" || len(banner.Contents) != 1 {
		t.Fatalf("unexpected banner %+v", banner)
	}
}

func TestCreateContentPostsMultipart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/banners" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("title"); got != "Launch banner" {
			t.Errorf("unexpected title %q", got)
		}
		if _, header, err := r.FormFile("coverImage"); err != nil || header.Filename != "cover.png" {
			t.Errorf("expected coverImage file, got %v", err)
		}
		w.Write([]byte(`{"status": "OK"}`))
	}))
	defer srv.Close()

	p := &payload.Payload{}
	p.AddValue("title", "Launch banner")
	p.AddFile("coverImage", "cover.png", []byte("cover"))

	client := gateway.NewClient(srv.URL)
	if err := client.CreateContent(context.Background(), domain.CategoryBanner, p); err != nil {
		t.Fatalf("create content: %v", err)
	}
}

func TestUpdateContentPatchesCategoryResource(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/suit-insurances/s-9" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status": "OK"}`))
	}))
	defer srv.Close()

	client := gateway.NewClient(srv.URL)
	if err := client.UpdateContent(context.Background(), domain.CategorySuitInsurance, "s-9", &payload.Payload{}); err != nil {
		t.Fatalf("update content: %v", err)
	}
}

func TestDeleteContentMapsStatusErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, gateway.ErrNotFound},
		{"forbidden", http.StatusForbidden, gateway.ErrForbidden},
		{"conflict", http.StatusConflict, gateway.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"message": "cannot delete"}`))
			}))
			defer srv.Close()

			client := gateway.NewClient(srv.URL)
			err := client.DeleteContent(context.Background(), domain.CategoryPromotion, "p-1")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var statusErr *gateway.StatusError
			if !errors.As(err, &statusErr) || statusErr.Message != "cannot delete" {
				t.Fatalf("expected envelope message, got %v", err)
			}
		})
	}
}

func TestMutationsRequireRecordID(t *testing.T) {
	t.Parallel()

	client := gateway.NewClient("http://backend.invalid")
	if err := client.UpdateContent(context.Background(), domain.CategoryBanner, "", &payload.Payload{}); !errors.Is(err, content.ErrRecordIDRequired) {
		t.Fatalf("expected ErrRecordIDRequired on update, got %v", err)
	}
	if err := client.DeleteContent(context.Background(), domain.CategoryBanner, ""); !errors.Is(err, content.ErrRecordIDRequired) {
		t.Fatalf("expected ErrRecordIDRequired on delete, got %v", err)
	}
}
