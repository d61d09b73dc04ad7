package domain

import "strings"

// searchSeparator joins the searchable fields into one string. A query can
// match across two adjacent fields' boundary (spanning the separator);
// that is accepted behavior, not a bug.
const searchSeparator = "|"

// SearchText builds the case-folded string a record is matched against:
// the raw tracking number, resolved order id, resolved sales office id,
// resolved source, raw courier name, raw carrier slug, raw status tag and
// raw updated-at timestamp, in that fixed order.
func (r Record) SearchText() string {
	parts := []string{
		r.raw("tracking_number"),
		r.Resolve(FieldOrderID),
		r.Resolve(FieldSalesOfficeID),
		r.Resolve(FieldSource),
		r.raw("courier_name"),
		r.raw("carrier_slug"),
		r.raw("status_tag"),
		r.raw("updated_at"),
	}
	return strings.ToLower(strings.Join(parts, searchSeparator))
}

// Search returns the subset of records whose search text contains the
// trimmed, case-folded query as a substring. An empty query returns the
// input unchanged. The filter is stable: result order is input order.
func Search(records []Record, query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.SearchText(), q) {
			out = append(out, r)
		}
	}
	return out
}
