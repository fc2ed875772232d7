package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/storage"
)

// StorageHandler maneja las operaciones del Storage Ledger.
type StorageHandler struct {
	uc *storage.UseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *storage.UseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// CreateUnit POST /api/storage-units
func (h *StorageHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateStorageUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateStorageUnit(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Capacity GET /api/storage/capacity?branch_id=&type_id=&kind=
func (h *StorageHandler) Capacity(c *fiber.Ctx) error {
	branchID := int64(c.QueryInt("branch_id"))
	typeID := int64(c.QueryInt("type_id"))
	if branchID == 0 || typeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y type_id son requeridos"})
	}
	out, err := h.uc.Capacity(c.UserContext(), branchID, typeID, c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Occupied GET /api/storage/occupied?branch_id=&type_id=&kind=
func (h *StorageHandler) Occupied(c *fiber.Ctx) error {
	branchID := int64(c.QueryInt("branch_id"))
	typeID := int64(c.QueryInt("type_id"))
	if branchID == 0 || typeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y type_id son requeridos"})
	}
	out, err := h.uc.Occupied(c.UserContext(), branchID, typeID, c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuantityOnHand GET /api/storage/on-hand?branch_id=&product_id=&kind=
func (h *StorageHandler) QuantityOnHand(c *fiber.Ctx) error {
	branchID := int64(c.QueryInt("branch_id"))
	productID := int64(c.QueryInt("product_id"))
	if branchID == 0 || productID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id y product_id son requeridos"})
	}
	out, err := h.uc.QuantityOnHand(c.UserContext(), branchID, productID, c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
