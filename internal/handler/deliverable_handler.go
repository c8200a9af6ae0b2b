package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
	"lollyshoppe/internal/validation"
)

// DeliverableHandler handles deliverable endpoints.
type DeliverableHandler struct {
	deliverableService service.DeliverableService
}

// NewDeliverableHandler creates a new deliverable handler.
func NewDeliverableHandler(deliverableService service.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{deliverableService: deliverableService}
}

// Create godoc
// @Summary Create a deliverable
// @Tags deliverables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deliverable body validation.DeliverablePayload true "Deliverable form"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /deliverables [post]
func (h *DeliverableHandler) Create(c echo.Context) error {
	var payload validation.DeliverablePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	deliverable, err := h.deliverableService.Create(c.Request().Context(), auth.ActorFrom(c), &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusCreated, deliverable)
}

// Update godoc
// @Summary Update a deliverable (full replace)
// @Tags deliverables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deliverable ID"
// @Param deliverable body validation.DeliverablePayload true "Deliverable form"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /deliverables/{id} [put]
func (h *DeliverableHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.DeliverablePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	deliverable, err := h.deliverableService.Update(c.Request().Context(), auth.ActorFrom(c), id, &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, deliverable)
}

// Delete godoc
// @Summary Delete a deliverable
// @Tags deliverables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deliverable ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /deliverables/{id} [delete]
func (h *DeliverableHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.deliverableService.Delete(c.Request().Context(), auth.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, nil)
}

// Get godoc
// @Summary Get a deliverable
// @Tags deliverables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deliverable ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /deliverables/{id} [get]
func (h *DeliverableHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	deliverable, err := h.deliverableService.Get(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, deliverable)
}

// ListByProject godoc
// @Summary List a project's deliverables, newest first
// @Tags deliverables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id}/deliverables [get]
func (h *DeliverableHandler) ListByProject(c echo.Context) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	deliverables, err := h.deliverableService.ListByProject(c.Request().Context(), auth.ActorFrom(c), projectID)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, deliverables)
}
