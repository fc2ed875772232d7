package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/invoices"
)

// InvoiceHandler maneja la consulta de facturas y su descarga en PDF.
type InvoiceHandler struct {
	uc *invoices.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoices.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetInvoice(c.UserContext(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	pdfBytes, filename, err := h.uc.DownloadInvoicePDF(c.UserContext(), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
