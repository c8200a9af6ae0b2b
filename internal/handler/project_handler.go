package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
	"lollyshoppe/internal/validation"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body validation.ProjectPayload true "Project form"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var payload validation.ProjectPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	project, err := h.projectService.Create(c.Request().Context(), auth.ActorFrom(c), &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusCreated, project)
}

// Update godoc
// @Summary Update a project (full replace)
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param project body validation.ProjectPayload true "Project form"
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.ProjectPayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	project, err := h.projectService.Update(c.Request().Context(), auth.ActorFrom(c), id, &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project and its milestones and deliverables
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.projectService.Delete(c.Request().Context(), auth.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, nil)
}

// Get godoc
// @Summary Get a project with milestones and deliverables
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	project, err := h.projectService.Get(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, project)
}

// List godoc
// @Summary List all projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, projects)
}

// ListByClient godoc
// @Summary List a client's projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /clients/{id}/projects [get]
func (h *ProjectHandler) ListByClient(c echo.Context) error {
	clientID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	projects, err := h.projectService.ListByClient(c.Request().Context(), auth.ActorFrom(c), clientID)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, projects)
}
