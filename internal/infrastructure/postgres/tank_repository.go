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

var _ repository.TankRepository = (*TankRepo)(nil)

const tankColumns = `id, name, product, location, current_volume, properties, created_at, updated_at`

// TankRepo implementación del puerto TankRepository sobre PostgreSQL (usable con pool o tx).
type TankRepo struct {
	q Querier
}

// NewTankRepository construye el adaptador de persistencia para tanques. Pasar pool o tx (Querier).
func NewTankRepository(q Querier) *TankRepo {
	return &TankRepo{q: q}
}

// Create persiste un nuevo tanque. El nombre es único sin distinguir mayúsculas.
func (r *TankRepo) Create(ctx context.Context, tank *entity.Tank) error {
	props, err := encodeProperties(tank.Properties)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO tanks (id, name, name_key, product, location, current_volume, properties, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		tank.ID, tank.Name, entity.NameKey(tank.Name), tank.Product, tank.Location,
		tank.CurrentVolume, props, tank.CreatedAt, tank.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tank: %w", err)
	}
	return nil
}

// GetByID obtiene un tanque por ID.
func (r *TankRepo) GetByID(ctx context.Context, id string) (*entity.Tank, error) {
	return r.getOne(ctx, `SELECT `+tankColumns+` FROM tanks WHERE id = $1`, id)
}

// GetForUpdate obtiene el tanque bloqueando la fila hasta el fin de la transacción.
func (r *TankRepo) GetForUpdate(ctx context.Context, id string) (*entity.Tank, error) {
	return r.getOne(ctx, `SELECT `+tankColumns+` FROM tanks WHERE id = $1 FOR UPDATE`, id)
}

// GetByName busca por nombre sin distinguir mayúsculas.
func (r *TankRepo) GetByName(ctx context.Context, name string) (*entity.Tank, error) {
	return r.getOne(ctx, `SELECT `+tankColumns+` FROM tanks WHERE name_key = $1`, entity.NameKey(name))
}

func (r *TankRepo) getOne(ctx context.Context, query string, arg any) (*entity.Tank, error) {
	t, err := scanTank(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tank: %w", err)
	}
	return t, nil
}

// List lista los tanques por nombre.
func (r *TankRepo) List(ctx context.Context) ([]*entity.Tank, error) {
	rows, err := r.q.Query(ctx, `SELECT `+tankColumns+` FROM tanks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tanks: %w", err)
	}
	defer rows.Close()
	list := []*entity.Tank{}
	for rows.Next() {
		t, err := scanTank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tank: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables y el estado asentado del tanque.
func (r *TankRepo) Update(ctx context.Context, tank *entity.Tank) error {
	props, err := encodeProperties(tank.Properties)
	if err != nil {
		return err
	}
	query := `
		UPDATE tanks SET name = $2, name_key = $3, product = $4, location = $5,
			current_volume = $6, properties = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		tank.ID, tank.Name, entity.NameKey(tank.Name), tank.Product, tank.Location,
		tank.CurrentVolume, props, tank.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tank: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTank(row pgx.Row) (*entity.Tank, error) {
	var (
		t     entity.Tank
		props []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Product, &t.Location, &t.CurrentVolume, &props, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	values, err := decodeProperties(props)
	if err != nil {
		return nil, err
	}
	t.Properties = values
	return &t, nil
}
