package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vyapari/billing-api/internal/application/billing"
	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain"
)

// CustomerHandler handles the customer directory plus the per-customer
// invoice listing and the batch PDF export (protected).
type CustomerHandler struct {
	uc        *billing.CustomerUseCase
	invoiceUC *billing.InvoiceUseCase
	exportUC  *billing.BatchExportUseCase
}

func NewCustomerHandler(uc *billing.CustomerUseCase, invoiceUC *billing.InvoiceUseCase, exportUC *billing.BatchExportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, invoiceUC: invoiceUC, exportUC: exportUC}
}

// Create creates a customer.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID returns one customer.
// GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Update patches a customer.
// PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// List returns a paginated customer listing.
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Delete removes a customer.
// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return customerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListInvoices returns every invoice of the customer.
// GET /api/customers/:id/invoices
func (h *CustomerHandler) ListInvoices(c *fiber.Ctx) error {
	out, err := h.invoiceUC.ListByCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// ExportInvoicesZip streams a ZIP containing one PDF per invoice of the customer.
// GET /api/customers/:id/invoices/zip
func (h *CustomerHandler) ExportInvoicesZip(c *fiber.Ctx) error {
	zipBytes, filename, err := h.exportUC.ExportCustomerInvoices(c.Context(), c.Params("id"), nil)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer has no invoices"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(zipBytes)
}

func customerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PHONE", Message: "phone already registered"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
