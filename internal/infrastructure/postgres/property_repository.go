package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación del puerto PropertyRepository sobre PostgreSQL.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador de persistencia del catálogo de propiedades.
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// Create persiste una definición de propiedad. El nombre es único sin distinguir mayúsculas.
func (r *PropertyRepo) Create(ctx context.Context, p *entity.PropertyDefinition) error {
	query := `
		INSERT INTO property_definitions (id, name, name_key, unit, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, entity.NameKey(p.Name), p.Unit, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad por ID.
func (r *PropertyRepo) GetByID(ctx context.Context, id string) (*entity.PropertyDefinition, error) {
	var p entity.PropertyDefinition
	err := r.q.QueryRow(ctx,
		`SELECT id, name, unit, created_at FROM property_definitions WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Unit, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// List lista el catálogo por nombre.
func (r *PropertyRepo) List(ctx context.Context) ([]*entity.PropertyDefinition, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, unit, created_at FROM property_definitions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()
	list := []*entity.PropertyDefinition{}
	for rows.Next() {
		var p entity.PropertyDefinition
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y unidad.
func (r *PropertyRepo) Update(ctx context.Context, p *entity.PropertyDefinition) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE property_definitions SET name = $2, name_key = $3, unit = $4 WHERE id = $1`,
		p.ID, p.Name, entity.NameKey(p.Name), p.Unit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update property: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una propiedad por ID. Los valores ya guardados en tanques y movimientos no se tocan.
func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM property_definitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
