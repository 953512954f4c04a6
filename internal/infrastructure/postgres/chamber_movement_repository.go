package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberMovementRepository = (*ChamberMovementRepo)(nil)

// ChamberMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type ChamberMovementRepo struct {
	q Querier
}

// NewChamberMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChamberMovementRepository(q Querier) *ChamberMovementRepo {
	return &ChamberMovementRepo{q: q}
}

// Create persiste un movimiento de cámara.
func (r *ChamberMovementRepo) Create(ctx context.Context, m *entity.ChamberMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO chamber_movements (id, transaction_id, chamber_id, item, type, quantity, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.ChamberID, m.Item, m.Type, m.Quantity, m.Reference, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create chamber movement: %w", err)
	}
	return nil
}

// ListByChamber lista movimientos de una cámara en un rango de fechas (más recientes primero).
func (r *ChamberMovementRepo) ListByChamber(ctx context.Context, chamberID string, from, to *time.Time, limit, offset int) ([]*entity.ChamberMovement, error) {
	query := `
		SELECT id, transaction_id, chamber_id, item, type, quantity, reference, created_at
		FROM chamber_movements WHERE chamber_id = $1`
	args := []any{chamberID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chamber movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChamberMovement
	for rows.Next() {
		var m entity.ChamberMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ChamberID, &m.Item, &m.Type,
			&m.Quantity, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chamber movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
