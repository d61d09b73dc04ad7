package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field identifies a logical attribute of a Record. The export pipeline has
// shipped the same attribute under different keys over time, so each Field
// maps to an ordered list of candidate source locations.
type Field string

const (
	FieldTrackingNumber         Field = "tracking_number"
	FieldCarrierLabel           Field = "carrier_label"
	FieldStatusTag              Field = "status_tag"
	FieldOrderID                Field = "order_id"
	FieldSalesOfficeID          Field = "sales_office_id"
	FieldSource                 Field = "source"
	FieldLastCheckpointTime     Field = "last_checkpoint_time"
	FieldLastCheckpointLocation Field = "last_checkpoint_location"
	FieldUpdatedAt              Field = "updated_at"
)

// Record is one shipment/return entry exactly as decoded from the export
// payload. Records are never mutated after ingestion; every accessor is a
// pure read.
type Record map[string]any

// customFieldsKey is the side-channel bag carrying values the carrier
// integration could not place in a top-level field.
const customFieldsKey = "custom_fields"

// candidate is one location a logical field's value may live in: a
// top-level key, or an entry in the custom_fields bag.
type candidate struct {
	key    string
	custom bool
}

// fieldCandidates lists the source locations tried per logical field, in
// priority order. The first value that is non-empty after trimming wins.
var fieldCandidates = map[Field][]candidate{
	FieldTrackingNumber: {{key: "tracking_number"}},
	FieldCarrierLabel:   {{key: "courier_name"}, {key: "carrier_slug"}},
	FieldStatusTag:      {{key: "status_tag"}},
	FieldOrderID: {
		{key: "order_id"},
		{key: "OrderID", custom: true},
		{key: "order_id", custom: true},
	},
	FieldSalesOfficeID: {
		{key: "sales_office_id"},
		{key: "SalesOfficeID", custom: true},
	},
	FieldSource: {
		{key: "source"},
		{key: "Source", custom: true},
	},
	FieldLastCheckpointTime:     {{key: "last_checkpoint_time"}},
	FieldLastCheckpointLocation: {{key: "last_checkpoint_location"}},
	FieldUpdatedAt:              {{key: "updated_at"}},
}

// Resolve returns the first candidate value for f that is non-empty after
// trimming, or "" when every candidate is empty or absent. It is total over
// arbitrary JSON-shaped input: missing keys, a missing custom_fields bag,
// and non-string values all resolve without error.
func (r Record) Resolve(f Field) string {
	for _, c := range fieldCandidates[f] {
		var v string
		if c.custom {
			v = r.customField(c.key)
		} else {
			v = stringify(r[c.key])
		}
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// raw reads a top-level key only, skipping custom_fields fallbacks. Used by
// the search text builder, which distinguishes raw and resolved fields.
func (r Record) raw(key string) string {
	return strings.TrimSpace(stringify(r[key]))
}

// customField looks up name in the custom_fields bag. The bag may be
// absent, a JSON object, or a list of {name, value} objects; the export
// pipeline has produced both shapes.
func (r Record) customField(name string) string {
	switch cf := r[customFieldsKey].(type) {
	case map[string]any:
		return stringify(cf[name])
	case []any:
		for _, item := range cf {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if stringify(m["name"]) == name {
				return stringify(m["value"])
			}
		}
	}
	return ""
}

// stringify renders a scalar JSON value as a string. Objects, arrays and
// nulls render as "" so that resolution stays total.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Row is the normalized presentation view of a Record: every logical field
// resolved to a plain string. Timestamps stay raw; formatting is a
// presentation concern.
type Row struct {
	TrackingNumber         string `json:"tracking_number"`
	CarrierLabel           string `json:"carrier_label"`
	StatusTag              string `json:"status_tag"`
	OrderID                string `json:"order_id"`
	SalesOfficeID          string `json:"sales_office_id"`
	Source                 string `json:"source"`
	LastCheckpointTime     string `json:"last_checkpoint_time"`
	LastCheckpointLocation string `json:"last_checkpoint_location"`
	UpdatedAt              string `json:"updated_at"`
}

// NewRow resolves every logical field of r into a Row.
func NewRow(r Record) Row {
	return Row{
		TrackingNumber:         r.Resolve(FieldTrackingNumber),
		CarrierLabel:           r.Resolve(FieldCarrierLabel),
		StatusTag:              r.Resolve(FieldStatusTag),
		OrderID:                r.Resolve(FieldOrderID),
		SalesOfficeID:          r.Resolve(FieldSalesOfficeID),
		Source:                 r.Resolve(FieldSource),
		LastCheckpointTime:     r.Resolve(FieldLastCheckpointTime),
		LastCheckpointLocation: r.Resolve(FieldLastCheckpointLocation),
		UpdatedAt:              r.Resolve(FieldUpdatedAt),
	}
}
