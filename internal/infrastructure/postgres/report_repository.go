package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// RevenueByBranch suma el total facturado por sucursal en [from, to].
// Sucursales sin ventas aparecen con total cero.
func (r *ReportRepo) RevenueByBranch(from, to time.Time) ([]repository.BranchRevenueRow, error) {
	query := `
		SELECT b.id, b.name, COALESCE(SUM(i.total), 0)
		FROM branches b
		LEFT JOIN invoices i
			ON i.branch_id = b.id AND i.date >= $1 AND i.date <= $2
		GROUP BY b.id, b.name
		ORDER BY b.id`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("revenue by branch: %w", err)
	}
	defer rows.Close()

	var out []repository.BranchRevenueRow
	for rows.Next() {
		var row repository.BranchRevenueRow
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.Total); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// OccupancyIndex devuelve capacidad contra uso de cada unidad de la
// sucursal, filtrado por clase si kind no es vacío.
func (r *ReportRepo) OccupancyIndex(branchID int64, kind string) ([]repository.OccupancyIndexRow, error) {
	query := `
		SELECT
			u.id, u.product_type_id, u.kind,
			u.capacity_volume,
			COALESCE(SUM(o.quantity * p.package_volume), 0),
			u.capacity_weight,
			COALESCE(SUM(o.quantity * p.package_weight), 0)
		FROM storage_units u
		LEFT JOIN occupancies o ON o.unit_id = u.id
		LEFT JOIN products p ON p.id = o.product_id
		WHERE u.branch_id = $1
		  AND ($2 = '' OR u.kind = $2)
		GROUP BY u.id, u.product_type_id, u.kind, u.capacity_volume, u.capacity_weight
		ORDER BY u.id`
	rows, err := r.q.Query(context.Background(), query, branchID, kind)
	if err != nil {
		return nil, fmt.Errorf("occupancy index: %w", err)
	}
	defer rows.Close()

	var out []repository.OccupancyIndexRow
	for rows.Next() {
		var row repository.OccupancyIndexRow
		if err := rows.Scan(&row.UnitID, &row.ProductTypeID, &row.Kind,
			&row.VolumeCap, &row.VolumeUsed, &row.WeightCap, &row.WeightUsed); err != nil {
			return nil, fmt.Errorf("scan occupancy row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
