package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/returns-dashboard/internal/api/metrics"
	"github.com/99minutos/returns-dashboard/internal/core/domain"
	"github.com/99minutos/returns-dashboard/internal/core/ports"
)

// DisplayCap is the maximum number of rows ever handed to the presentation
// layer. The reported count stays the true filtered count even when the row
// set is truncated to this cap.
const DisplayCap = 200

// RefreshThrottle abstracts the rate guard on manual refreshes (Redis).
type RefreshThrottle interface {
	// Allow reports whether a refresh may run now.
	Allow(ctx context.Context) (bool, error)
}

type dashboardService struct {
	source   ports.ExportSource
	throttle RefreshThrottle
	log      zerolog.Logger

	mu          sync.RWMutex
	status      ports.LoadStatus
	records     []domain.Record
	generatedAt string
	tag         string
	exportCount *int
}

// NewDashboardService returns a DashboardService implementation.
// throttle may be nil, in which case refreshes are never throttled.
func NewDashboardService(source ports.ExportSource, throttle RefreshThrottle, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{
		source:   source,
		throttle: throttle,
		log:      log,
		status:   ports.StatusLoading,
	}
}

// Load runs the full load sequence and replaces the snapshot wholesale.
func (s *dashboardService) Load(ctx context.Context) error {
	start := time.Now()

	// 1. Metadata document first. Its absence or failure must not abort the
	// load; it degrades to the payload's own summary fields.
	meta, err := s.source.FetchMetadata(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("metadata unavailable, using payload fallbacks")
		meta = nil
	}

	// 2. Primary payload. Failure clears the snapshot: no stale data.
	payload, err := s.source.FetchPayload(ctx)
	if err != nil {
		s.clear()
		metrics.LoadsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("payload unavailable, snapshot cleared")
		return fmt.Errorf("load: %w: %v", domain.ErrPayloadUnavailable, err)
	}

	// 3. Visibility pre-filter before anything downstream sees the records.
	visible := domain.VisibleOnly(payload.Items)

	// 4. Metadata wins over the payload's self-reported summary values.
	generatedAt := payload.GeneratedAt
	count := payload.Count
	if meta != nil {
		if meta.GeneratedAt != "" {
			generatedAt = meta.GeneratedAt
		}
		if meta.Count != nil {
			count = meta.Count
		}
	}

	s.mu.Lock()
	s.status = ports.StatusOK
	s.records = visible
	s.generatedAt = generatedAt
	s.tag = payload.Tag
	s.exportCount = count
	s.mu.Unlock()

	metrics.LoadsTotal.WithLabelValues("ok").Inc()
	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.RecordsVisible.Set(float64(len(visible)))

	s.log.Info().
		Int("exported", len(payload.Items)).
		Int("visible", len(visible)).
		Str("generated_at", generatedAt).
		Msg("snapshot replaced")

	return nil
}

// Refresh re-runs the load sequence in the background. The triggering HTTP
// request only starts the load, it does not wait for it.
func (s *dashboardService) Refresh(ctx context.Context) error {
	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("throttle check failed, refreshing anyway")
		} else if !allowed {
			metrics.RefreshThrottledTotal.Inc()
			return domain.ErrRefreshThrottled
		}
	}

	// Detached context: the load must outlive the HTTP request.
	go func() {
		if err := s.Load(context.Background()); err != nil {
			s.log.Error().Err(err).Msg("refresh load failed")
		}
	}()

	return nil
}

// Query filters the visible snapshot and applies the display cap.
func (s *dashboardService) Query(in ports.QueryInput) *ports.QueryResult {
	s.mu.RLock()
	records := s.records
	status := s.status
	generatedAt := s.generatedAt
	tag := s.tag
	exportCount := s.exportCount
	s.mu.RUnlock()

	matched := domain.Search(records, in.Query)

	limit := in.Limit
	if limit <= 0 || limit > DisplayCap {
		limit = DisplayCap
	}

	capped := matched
	truncated := false
	if len(capped) > limit {
		capped = capped[:limit]
		truncated = true
	}

	rows := make([]domain.Row, len(capped))
	for i, r := range capped {
		rows[i] = domain.NewRow(r)
	}

	return &ports.QueryResult{
		Status:      status,
		GeneratedAt: generatedAt,
		Tag:         tag,
		ExportCount: exportCount,
		Total:       len(matched),
		Truncated:   truncated,
		Rows:        rows,
	}
}

// Status reports the snapshot state with its human caption.
func (s *dashboardService) Status() *ports.StatusResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &ports.StatusResult{
		Status:       s.status,
		Caption:      statusCaption(s.status),
		GeneratedAt:  s.generatedAt,
		Tag:          s.tag,
		ExportCount:  s.exportCount,
		VisibleCount: len(s.records),
	}
}

func (s *dashboardService) clear() {
	s.mu.Lock()
	s.status = ports.StatusNoData
	s.records = nil
	s.generatedAt = ""
	s.tag = ""
	s.exportCount = nil
	s.mu.Unlock()

	metrics.RecordsVisible.Set(0)
}

// statusCaption maps a load status to the caption shown next to the status
// indicator.
func statusCaption(status ports.LoadStatus) string {
	switch status {
	case ports.StatusOK:
		return "OK"
	case ports.StatusNoData:
		return "No data yet. Waiting for the first successful export."
	default:
		return "Loading..."
	}
}
