package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/replenishment"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
)

// ReplenishmentHandler maneja órdenes de compra y llegadas de pedidos.
type ReplenishmentHandler struct {
	uc *replenishment.UseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *replenishment.UseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

func toOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		ID:           o.ID,
		SupplierID:   o.SupplierID,
		BranchID:     o.BranchID,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		AgreedPrice:  o.AgreedPrice,
		ExpectedDate: o.ExpectedDate,
		Status:       o.Status,
	}
}

// PlaceOrder POST /api/orders
func (h *ReplenishmentHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.PlaceOrder(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// RecordArrival POST /api/orders/:id/arrival
func (h *ReplenishmentHandler) RecordArrival(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.RecordArrivalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordArrival(c.UserContext(), int64(orderID), in.Quantity, in.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOrder GET /api/orders/:id
func (h *ReplenishmentHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	order, err := h.uc.GetOrder(c.UserContext(), int64(orderID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// ListOrders GET /api/orders
func (h *ReplenishmentHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.uc.ListOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return c.JSON(out)
}
