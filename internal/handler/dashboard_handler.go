package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
)

// DashboardHandler serves the derived dashboard summaries.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin godoc
// @Summary Admin dashboard summary
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	summary, err := h.dashboardService.AdminSummary(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, summary)
}

// Client godoc
// @Summary Client dashboard summary for the current user
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /dashboard/client [get]
func (h *DashboardHandler) Client(c echo.Context) error {
	summary, err := h.dashboardService.ClientSummary(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, summary)
}
