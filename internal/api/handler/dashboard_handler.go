package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/returns-dashboard/internal/core/ports"
)

// DashboardHandler handles HTTP requests for the records view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// List handles GET /v1/records: the visible record set, filtered by the
// optional search query and capped at the display limit.
//
// @Summary      List visible records, optionally filtered by substring search
// @Tags         records
// @Produce      json
// @Param        q      query     string  false  "Case-insensitive substring to search for"
// @Param        limit  query     int     false  "Row cap (1-200, default 200)"
// @Success      200    {object}  listRecordsResponse
// @Failure      422    {object}  errorResponse
// @Router       /v1/records [get]
func (h *DashboardHandler) List(c echo.Context) error {
	var req listRecordsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res := h.service.Query(ports.QueryInput{Query: req.Q, Limit: req.Limit})
	return c.JSON(http.StatusOK, toListResponse(res))
}

// Refresh handles POST /v1/refresh. It starts a full reload of both export
// documents and returns immediately.
//
// @Summary      Trigger a reload of the export documents
// @Tags         records
// @Produce      json
// @Success      202  {object}  acceptedResponse
// @Failure      429  {object}  errorResponse
// @Router       /v1/refresh [post]
func (h *DashboardHandler) Refresh(c echo.Context) error {
	if err := h.service.Refresh(c.Request().Context()); err != nil {
		// The central error handler maps domain.ErrRefreshThrottled to 429.
		return err
	}
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "refresh started"})
}

// Status handles GET /v1/status: the load state shown by the status
// indicator.
//
// @Summary      Current snapshot status
// @Tags         records
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /v1/status [get]
func (h *DashboardHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, toStatusResponse(h.service.Status()))
}
