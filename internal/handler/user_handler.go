package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	errs "lollyshoppe/internal/errors"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
)

// UserHandler handles user and identity-sync endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Sync godoc
// @Summary Sync the authenticated identity to a local user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /users/sync [post]
func (h *UserHandler) Sync(c echo.Context) error {
	// The actor middleware already ran the sync; answering with the resolved
	// user keeps the endpoint idempotent.
	actor := auth.ActorFrom(c)
	if actor == nil {
		return fail(c, errs.ErrUnauthenticated)
	}
	user, err := h.userService.GetUser(c.Request().Context(), actor.UserID)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, user)
}

// Me godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 401 {object} httpx.Response
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	return h.Sync(c)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, users)
}

// ListClients godoc
// @Summary List users with the CLIENT role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /clients [get]
func (h *UserHandler) ListClients(c echo.Context) error {
	clients, err := h.userService.ListClients(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, clients)
}
