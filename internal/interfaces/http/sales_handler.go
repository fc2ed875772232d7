package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/sales"
)

// SalesHandler maneja términos de venta y ventas.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RegisterTerm PUT /api/sales-terms
func (h *SalesHandler) RegisterTerm(c *fiber.Ctx) error {
	var in dto.RegisterSalesTermRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterSalesTerm(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetTerm GET /api/sales-terms?branch_id=&product_id=
func (h *SalesHandler) GetTerm(c *fiber.Ctx) error {
	branchID := int64(c.QueryInt("branch_id"))
	productID := int64(c.QueryInt("product_id"))
	if branchID == 0 || productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y product_id son requeridos"})
	}
	out, err := h.uc.TermsFor(c.UserContext(), branchID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sell POST /api/sales
func (h *SalesHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Sell(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
