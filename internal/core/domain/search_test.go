package domain

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{"tracking_number": "1Z999", "status_tag": "in_transit", "courier_name": "UPS Ground"},
		{"tracking_number": "RR123", "custom_fields": map[string]any{"OrderID": "ORD-42"}},
		{"tracking_number": "XY777", "carrier_slug": "dhl", "updated_at": "2026-08-20T10:00:00Z"},
	}
}

func TestSearch_EmptyQueryIsIdentity(t *testing.T) {
	records := sampleRecords()

	for _, q := range []string{"", "   ", "\t\n"} {
		got := Search(records, q)
		if !reflect.DeepEqual(got, records) {
			t.Fatalf("query %q: expected identical result, got %v", q, got)
		}
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	records := sampleRecords()

	got := Search(records, "ord-42")
	if len(got) != 1 || got[0].Resolve(FieldOrderID) != "ORD-42" {
		t.Fatalf("expected the ORD-42 record, got %v", got)
	}

	got = Search(records, "UPS GRO")
	if len(got) != 1 || got[0].Resolve(FieldTrackingNumber) != "1Z999" {
		t.Fatalf("expected the UPS record, got %v", got)
	}

	if got = Search(records, "no-such-thing"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestSearch_StableAndPure(t *testing.T) {
	records := sampleRecords()

	first := Search(records, "1")
	second := Search(records, "1")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs produced different results")
	}

	// Result order must be input order.
	all := Search(records, "")
	for i := range all {
		if !reflect.DeepEqual(all[i], records[i]) {
			t.Fatalf("order changed at index %d", i)
		}
	}
}

func TestSearch_CrossFieldBoundaryMatch(t *testing.T) {
	// The searchable text joins fields with "|"; a query spanning the
	// separator is an accepted characteristic of the concatenation.
	r := Record{"tracking_number": "ABC", "order_id": "DEF"}
	got := Search([]Record{r}, "abc|def")
	if len(got) != 1 {
		t.Fatalf("expected boundary-spanning match, got %v", got)
	}
}

func TestSearchText_FieldOrder(t *testing.T) {
	r := Record{
		"tracking_number": "TN",
		"order_id":        "OID",
		"sales_office_id": "SO",
		"source":          "SRC",
		"courier_name":    "NAME",
		"carrier_slug":    "SLUG",
		"status_tag":      "TAG",
		"updated_at":      "TS",
	}
	want := "tn|oid|so|src|name|slug|tag|ts"
	if got := r.SearchText(); got != want {
		t.Fatalf("SearchText() = %q, want %q", got, want)
	}
}
