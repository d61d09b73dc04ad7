package ports

import (
	"context"

	"github.com/99minutos/returns-dashboard/internal/core/domain"
)

// LoadStatus is the lifecycle state of the in-memory snapshot.
type LoadStatus string

const (
	// StatusLoading means no load has settled yet.
	StatusLoading LoadStatus = "loading"
	// StatusOK means the last load succeeded (possibly with zero records).
	StatusOK LoadStatus = "ok"
	// StatusNoData means the last load failed; the record list is empty.
	StatusNoData LoadStatus = "no_data"
)

// QueryInput carries the parameters of a records query.
type QueryInput struct {
	// Query is the free-text search string; empty means "all visible".
	Query string
	// Limit caps the number of rows returned. Values <= 0 fall back to the
	// display cap; values above the cap are clamped down to it.
	Limit int
}

// QueryResult is the filtered view handed to the presentation layer.
type QueryResult struct {
	Status      LoadStatus
	GeneratedAt string
	Tag         string
	// ExportCount is the record count the export pipeline reported for
	// itself; nil when neither document carried one.
	ExportCount *int
	// Total is the true size of the filtered/visible set, never the
	// capped row count.
	Total     int
	Truncated bool
	Rows      []domain.Row
}

// StatusResult is the summary shown by the status indicator.
type StatusResult struct {
	Status       LoadStatus
	Caption      string
	GeneratedAt  string
	Tag          string
	ExportCount  *int
	VisibleCount int
}

// DashboardService owns the in-memory record snapshot and implements the
// load and query pipeline.
type DashboardService interface {
	// Load fetches both export documents and replaces the snapshot
	// wholesale. On payload failure the snapshot is cleared and the error
	// wraps domain.ErrPayloadUnavailable.
	Load(ctx context.Context) error
	// Refresh re-runs the load sequence asynchronously. It returns
	// domain.ErrRefreshThrottled when a refresh ran too recently.
	Refresh(ctx context.Context) error
	// Query filters the visible snapshot by the search query and applies
	// the display cap. Pure read; identical inputs yield identical results.
	Query(in QueryInput) *QueryResult
	// Status reports the current snapshot state with a human caption.
	Status() *StatusResult
}
