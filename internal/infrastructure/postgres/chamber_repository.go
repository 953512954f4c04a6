package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberRepository = (*ChamberRepo)(nil)

const chamberColumns = `id, name, capacity, tag, created_at, updated_at`

// ChamberRepo implementación del puerto ChamberRepository sobre PostgreSQL.
type ChamberRepo struct {
	q Querier
}

// NewChamberRepository construye el adaptador de persistencia para cámaras.
func NewChamberRepository(q Querier) *ChamberRepo {
	return &ChamberRepo{q: q}
}

// Create persiste una nueva cámara.
func (r *ChamberRepo) Create(ctx context.Context, c *entity.Chamber) error {
	query := `
		INSERT INTO chambers (` + chamberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Capacity, c.Tag, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chamber: %w", err)
	}
	return nil
}

// GetByID obtiene una cámara por ID; (nil, nil) si no existe.
func (r *ChamberRepo) GetByID(ctx context.Context, id string) (*entity.Chamber, error) {
	query := `SELECT ` + chamberColumns + ` FROM chambers WHERE id = $1`
	c, err := scanChamber(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chamber: %w", err)
	}
	return c, nil
}

// Update actualiza nombre, capacidad y etiqueta.
func (r *ChamberRepo) Update(ctx context.Context, c *entity.Chamber) error {
	query := `
		UPDATE chambers SET name = $2, capacity = $3, tag = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Capacity, c.Tag, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update chamber: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista cámaras por nombre con paginación.
func (r *ChamberRepo) List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error) {
	query := `SELECT ` + chamberColumns + ` FROM chambers ORDER BY name LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListAll devuelve todas las cámaras.
func (r *ChamberRepo) ListAll(ctx context.Context) ([]*entity.Chamber, error) {
	return r.list(ctx, `SELECT `+chamberColumns+` FROM chambers ORDER BY name`)
}

func (r *ChamberRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Chamber, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chambers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chamber
	for rows.Next() {
		c, err := scanChamber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chamber: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina una cámara por ID.
func (r *ChamberRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM chambers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete chamber: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanChamber(row pgx.Row) (*entity.Chamber, error) {
	var c entity.Chamber
	if err := row.Scan(&c.ID, &c.Name, &c.Capacity, &c.Tag, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
