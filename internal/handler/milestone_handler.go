package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
	"lollyshoppe/internal/validation"
)

// MilestoneHandler handles milestone endpoints.
type MilestoneHandler struct {
	milestoneService service.MilestoneService
}

// NewMilestoneHandler creates a new milestone handler.
func NewMilestoneHandler(milestoneService service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// ReorderRequest carries the milestone ids in their new display order.
type ReorderRequest struct {
	MilestoneIDs []string `json:"milestone_ids" validate:"required,min=1,dive,uuid"`
}

// Create godoc
// @Summary Create a milestone
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param milestone body validation.MilestonePayload true "Milestone form"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /milestones [post]
func (h *MilestoneHandler) Create(c echo.Context) error {
	var payload validation.MilestonePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	milestone, err := h.milestoneService.Create(c.Request().Context(), auth.ActorFrom(c), &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusCreated, milestone)
}

// Update godoc
// @Summary Update a milestone (full replace)
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Param milestone body validation.MilestonePayload true "Milestone form"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /milestones/{id} [put]
func (h *MilestoneHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.MilestonePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	milestone, err := h.milestoneService.Update(c.Request().Context(), auth.ActorFrom(c), id, &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, milestone)
}

// Delete godoc
// @Summary Delete a milestone
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /milestones/{id} [delete]
func (h *MilestoneHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.milestoneService.Delete(c.Request().Context(), auth.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, nil)
}

// Get godoc
// @Summary Get a milestone
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /milestones/{id} [get]
func (h *MilestoneHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	milestone, err := h.milestoneService.Get(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, milestone)
}

// ListByProject godoc
// @Summary List a project's milestones in display order
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id}/milestones [get]
func (h *MilestoneHandler) ListByProject(c echo.Context) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	milestones, err := h.milestoneService.ListByProject(c.Request().Context(), auth.ActorFrom(c), projectID)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, milestones)
}

// ToggleComplete godoc
// @Summary Toggle a milestone's completion state
// @Tags milestones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Milestone ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /milestones/{id}/toggle [post]
func (h *MilestoneHandler) ToggleComplete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	milestone, err := h.milestoneService.ToggleComplete(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, milestone)
}

// Reorder godoc
// @Summary Reorder a project's milestones
// @Tags milestones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body ReorderRequest true "Milestone ids in new order"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id}/milestones/order [put]
func (h *MilestoneHandler) Reorder(c echo.Context) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	ids := make([]uuid.UUID, len(req.MilestoneIDs))
	for i, raw := range req.MilestoneIDs {
		ids[i] = uuid.MustParse(raw)
	}

	if err := h.milestoneService.Reorder(c.Request().Context(), auth.ActorFrom(c), projectID, ids); err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, nil)
}
