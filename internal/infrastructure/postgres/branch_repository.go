package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create inserta una sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, city, address, name)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		branch.ID, branch.City, branch.Address, branch.Name)
	if err != nil {
		return fmt.Errorf("create branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por id; nil si no existe.
func (r *BranchRepo) GetByID(id int64) (*entity.Branch, error) {
	query := `SELECT id, city, address, name FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.City, &b.Address, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// List devuelve todas las sucursales ordenadas por id.
func (r *BranchRepo) List() ([]*entity.Branch, error) {
	query := `SELECT id, city, address, name FROM branches ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var out []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.City, &b.Address, &b.Name); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}
