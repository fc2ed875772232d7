package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/superandes-api/internal/domain/repository"
)

var _ repository.Sequence = (*Sequence)(nil)

// Sequence asigna ids desde el secuenciador central superandes_seq.
type Sequence struct {
	q Querier
}

// NewSequence construye el adaptador. Pasar pool o tx (Querier).
func NewSequence(q Querier) *Sequence {
	return &Sequence{q: q}
}

// NextID devuelve el siguiente id del secuenciador.
func (s *Sequence) NextID() (int64, error) {
	var id int64
	err := s.q.QueryRow(context.Background(), `SELECT nextval('superandes_seq')`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return id, nil
}
