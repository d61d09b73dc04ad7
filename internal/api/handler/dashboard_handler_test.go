package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/returns-dashboard/internal/core/domain"
	"github.com/99minutos/returns-dashboard/internal/core/ports"
)

type stubDashboardService struct {
	queryRes   *ports.QueryResult
	statusRes  *ports.StatusResult
	refreshErr error
	lastQuery  ports.QueryInput
}

func (s *stubDashboardService) Load(_ context.Context) error { return nil }

func (s *stubDashboardService) Refresh(_ context.Context) error { return s.refreshErr }

func (s *stubDashboardService) Query(in ports.QueryInput) *ports.QueryResult {
	s.lastQuery = in
	return s.queryRes
}

func (s *stubDashboardService) Status() *ports.StatusResult { return s.statusRes }

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDashboardHandler_List_Success(t *testing.T) {
	stub := &stubDashboardService{
		queryRes: &ports.QueryResult{
			Status:      ports.StatusOK,
			GeneratedAt: "2026-08-28T06:00:00Z",
			Total:       1,
			Rows: []domain.Row{
				{TrackingNumber: "1Z999", StatusTag: "in_transit", CarrierLabel: "UPS Ground"},
			},
		},
	}
	handler := NewDashboardHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/records?q=ups&limit=5")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastQuery.Query != "ups" || stub.lastQuery.Limit != 5 {
		t.Fatalf("unexpected query input: %+v", stub.lastQuery)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "ok" || resp["total"] != float64(1) {
		t.Fatalf("unexpected response: %v", resp)
	}
	items, ok := resp["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", resp["items"])
	}
	row := items[0].(map[string]any)
	if row["tracking_number"] != "1Z999" || row["carrier_label"] != "UPS Ground" {
		t.Fatalf("unexpected row payload: %v", row)
	}
}

func TestDashboardHandler_List_LimitOutOfRange(t *testing.T) {
	handler := NewDashboardHandler(&stubDashboardService{})

	for _, target := range []string{"/v1/records?limit=500", "/v1/records?limit=-1"} {
		c, _ := newTestContext(t, http.MethodGet, target)
		err := handler.List(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %v", target, err)
		}
	}
}

func TestDashboardHandler_Refresh_Accepted(t *testing.T) {
	handler := NewDashboardHandler(&stubDashboardService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/refresh")
	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "refresh started") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestDashboardHandler_Refresh_PropagatesThrottleError(t *testing.T) {
	handler := NewDashboardHandler(&stubDashboardService{refreshErr: domain.ErrRefreshThrottled})

	c, _ := newTestContext(t, http.MethodPost, "/v1/refresh")
	if err := handler.Refresh(c); !errors.Is(err, domain.ErrRefreshThrottled) {
		t.Fatalf("expected throttle error to propagate, got %v", err)
	}
}

func TestDashboardHandler_Status(t *testing.T) {
	handler := NewDashboardHandler(&stubDashboardService{
		statusRes: &ports.StatusResult{
			Status:       ports.StatusNoData,
			Caption:      "No data yet. Waiting for the first successful export.",
			VisibleCount: 0,
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/v1/status")
	if err := handler.Status(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "first successful export") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPageHandler_Index(t *testing.T) {
	handler := NewPageHandler()

	c, rec := newTestContext(t, http.MethodGet, "/")
	if err := handler.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Returns Dashboard") {
		t.Fatal("page body missing dashboard markup")
	}
}
