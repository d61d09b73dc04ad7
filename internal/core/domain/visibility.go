package domain

// The export stream contains placeholder rows for carrier integrations that
// deliberately withhold tracking data but still carry fulfillment metadata.
// Those stay visible; rows carrying neither tracking nor business
// information are noise and are suppressed before any downstream logic
// (search, rendering, counting) runs.

// HasTrackingInfo reports whether at least one of tracking number, status
// tag or carrier label is non-empty after trimming.
func (r Record) HasTrackingInfo() bool {
	return r.Resolve(FieldTrackingNumber) != "" ||
		r.Resolve(FieldStatusTag) != "" ||
		r.Resolve(FieldCarrierLabel) != ""
}

// HasBusinessInfo reports whether at least one of order id, sales office id
// or source is non-empty after trimming.
func (r Record) HasBusinessInfo() bool {
	return r.Resolve(FieldOrderID) != "" ||
		r.Resolve(FieldSalesOfficeID) != "" ||
		r.Resolve(FieldSource) != ""
}

// Visible reports whether the record is worth displaying at all.
func (r Record) Visible() bool {
	return r.HasTrackingInfo() || r.HasBusinessInfo()
}

// VisibleOnly returns the records that pass the visibility policy,
// preserving input order.
func VisibleOnly(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Visible() {
			out = append(out, r)
		}
	}
	return out
}
