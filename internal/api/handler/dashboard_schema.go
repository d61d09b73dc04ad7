package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// listRecordsRequest carries the query parameters of the records endpoint.
// Limit is clamped server-side to the display cap; the validator rejects
// out-of-range values early with a clear message.
type listRecordsRequest struct {
	Q     string `query:"q"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type rowResponse struct {
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

// listRecordsResponse is the filtered row set handed to the presentation
// layer. Total is always the true filtered count; Items is capped.
type listRecordsResponse struct {
	Status      string        `json:"status"`
	GeneratedAt string        `json:"generated_at,omitempty"`
	Tag         string        `json:"tag,omitempty"`
	ExportCount *int          `json:"export_count,omitempty"`
	Total       int           `json:"total"`
	Truncated   bool          `json:"truncated"`
	Items       []rowResponse `json:"items"`
}

type statusResponse struct {
	Status       string `json:"status"`
	Caption      string `json:"caption"`
	GeneratedAt  string `json:"generated_at,omitempty"`
	Tag          string `json:"tag,omitempty"`
	ExportCount  *int   `json:"export_count,omitempty"`
	VisibleCount int    `json:"visible_count"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
