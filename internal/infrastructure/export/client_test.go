package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPayload_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"generated_at": "2026-08-28T06:00:00Z",
			"tag": "Delivered",
			"count": 2,
			"items": [
				{"tracking_number": "1Z999", "status_tag": "in_transit"},
				{"custom_fields": {"OrderID": "X1"}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	p, err := c.FetchPayload(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if p.GeneratedAt != "2026-08-28T06:00:00Z" || p.Tag != "Delivered" {
		t.Fatalf("unexpected envelope: %+v", p)
	}
	if p.Count == nil || *p.Count != 2 {
		t.Fatalf("unexpected count: %v", p.Count)
	}
	if len(p.Items) != 2 || p.Items[0].Resolve("tracking_number") != "1Z999" {
		t.Fatalf("unexpected items: %v", p.Items)
	}
}

func TestFetchPayload_MissingItemsMeansEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"generated_at": "ts"}`))
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL, "", 0).FetchPayload(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(p.Items) != 0 {
		t.Fatalf("expected empty item list, got %v", p.Items)
	}
	if p.Count != nil {
		t.Fatalf("absent count must stay nil, got %v", p.Count)
	}
}

func TestFetchPayload_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "", 0).FetchPayload(context.Background()); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestFetchPayload_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "", 0).FetchPayload(context.Background()); err == nil {
		t.Fatal("expected error on malformed JSON")
	}
}

func TestFetchMetadata_NoURLConfigured(t *testing.T) {
	m, err := NewClient("http://unused", "", 0).FetchMetadata(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil metadata, got %+v", m)
	}
}

func TestFetchMetadata_Decodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"generated_at": "meta-ts", "count": 5}`))
	}))
	defer srv.Close()

	m, err := NewClient("http://unused", srv.URL, 0).FetchMetadata(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if m.GeneratedAt != "meta-ts" || m.Count == nil || *m.Count != 5 {
		t.Fatalf("unexpected metadata: %+v", m)
	}
}
