package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
	"lollyshoppe/internal/validation"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body validation.InvoicePayload true "Invoice form"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var payload validation.InvoicePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	invoice, err := h.invoiceService.Create(c.Request().Context(), auth.ActorFrom(c), &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusCreated, invoice)
}

// Update godoc
// @Summary Update an invoice (full replace)
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param invoice body validation.InvoicePayload true "Invoice form"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var payload validation.InvoicePayload
	if err := c.Bind(&payload); err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&payload); err != nil {
		return httpx.FailFields(c, http.StatusBadRequest, "validation failed", validation.Fields(err))
	}

	invoice, err := h.invoiceService.Update(c.Request().Context(), auth.ActorFrom(c), id, &payload)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, invoice)
}

// Delete godoc
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.invoiceService.Delete(c.Request().Context(), auth.ActorFrom(c), id); err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, nil)
}

// Get godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	invoice, err := h.invoiceService.Get(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, invoice)
}

// List godoc
// @Summary List all invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.invoiceService.List(c.Request().Context(), auth.ActorFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, invoices)
}

// ListByClient godoc
// @Summary List a client's invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Router /clients/{id}/invoices [get]
func (h *InvoiceHandler) ListByClient(c echo.Context) error {
	clientID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	invoices, err := h.invoiceService.ListByClient(c.Request().Context(), auth.ActorFrom(c), clientID)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, invoices)
}

// MarkAsPaid godoc
// @Summary Mark an invoice as paid
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /invoices/{id}/pay [post]
func (h *InvoiceHandler) MarkAsPaid(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	invoice, err := h.invoiceService.MarkAsPaid(c.Request().Context(), auth.ActorFrom(c), id)
	if err != nil {
		return fail(c, err)
	}
	return httpx.OK(c, http.StatusOK, invoice)
}
