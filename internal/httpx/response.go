// Package httpx defines the uniform response envelope every operation
// returns: {"success": true, "data": ...} or {"success": false, "error": ...}.
// Failures never propagate past this boundary as raw errors.
package httpx

import (
	"github.com/labstack/echo/v4"
)

// Response is the envelope for all API responses.
type Response struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// OK writes a success envelope.
func OK(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

// Fail writes a failure envelope with a single message.
func Fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, Response{Success: false, Error: msg})
}

// FailFields writes a failure envelope carrying field-level validation errors.
func FailFields(c echo.Context, status int, msg string, fields map[string]string) error {
	return c.JSON(status, Response{Success: false, Error: msg, Fields: fields})
}
