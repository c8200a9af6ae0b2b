package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/errors"
	"lollyshoppe/internal/httpx"
)

// fail converts a domain error into the failure envelope. Anything the error
// mapper does not recognize becomes a generic message so storage internals
// never reach the caller.
func fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return httpx.Fail(c, httpErr.StatusCode, httpErr.Message)
}

// parseID parses a path parameter as UUID, answering 400 on garbage.
func parseID(c echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, httpx.Fail(c, http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
