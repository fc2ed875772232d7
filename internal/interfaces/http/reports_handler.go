package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/application/reports"
)

// ReportsHandler maneja las consultas de reportes.
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// RevenueByBranch GET /api/reports/revenue?from=&to=
func (h *ReportsHandler) RevenueByBranch(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas RFC3339"})
	}
	out, err := h.uc.RevenueByBranch(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByCustomer GET /api/reports/customer-sales?customer_id=&from=&to=
func (h *ReportsHandler) SalesByCustomer(c *fiber.Ctx) error {
	customerID := int64(c.QueryInt("customer_id"))
	if customerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id es requerido"})
	}
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to deben ser fechas RFC3339"})
	}
	out, err := h.uc.SalesByCustomer(c.UserContext(), customerID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OccupancyIndex GET /api/reports/occupancy?branch_id=&kind=
func (h *ReportsHandler) OccupancyIndex(c *fiber.Ctx) error {
	branchID := int64(c.QueryInt("branch_id"))
	if branchID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "branch_id es requerido"})
	}
	out, err := h.uc.OccupancyIndex(c.UserContext(), branchID, c.Query("kind"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
