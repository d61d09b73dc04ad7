package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed index.html
var indexHTML []byte

// PageHandler serves the embedded dashboard page. The page is pure
// presentation: it renders what /v1/records and /v1/status return and holds
// no logic of its own beyond DOM updates and date formatting.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET /.
func (h *PageHandler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}
