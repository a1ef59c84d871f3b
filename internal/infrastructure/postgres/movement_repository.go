package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, type, source_tank_id, destination_tank_id, date, scheduled_date,
	expected_volume, actual_volume, properties, carrier, ticket_number, notes, pdf_path, created_at, created_by`

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Origen y destino se guardan en forma plana (NULL si no aplica).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	props, err := encodeProperties(m.Properties)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(ctx, query,
		m.ID, string(m.Type()), nullString(m.SourceTankID()), nullString(m.DestinationTankID()),
		m.Date, m.ScheduledDate, m.ExpectedVolume, m.ActualVolume, props,
		m.Carrier, m.TicketNumber, m.Notes, m.PDFPath, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Update reemplaza todos los campos mutables del movimiento.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	props, err := encodeProperties(m.Properties)
	if err != nil {
		return err
	}
	query := `
		UPDATE movements SET type = $2, source_tank_id = $3, destination_tank_id = $4, date = $5,
			scheduled_date = $6, expected_volume = $7, actual_volume = $8, properties = $9,
			carrier = $10, ticket_number = $11, notes = $12, pdf_path = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, string(m.Type()), nullString(m.SourceTankID()), nullString(m.DestinationTankID()),
		m.Date, m.ScheduledDate, m.ExpectedVolume, m.ActualVolume, props,
		m.Carrier, m.TicketNumber, m.Notes, m.PDFPath,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista movimientos (más recientes primero) con filtro opcional por tanque y estado.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var (
		conds []string
		args  []any
	)
	if filter.TankID != "" {
		args = append(args, filter.TankID)
		conds = append(conds, fmt.Sprintf("(source_tank_id = $%d OR destination_tank_id = $%d)", len(args), len(args)))
	}
	if filter.PendingOnly {
		conds = append(conds, "date IS NULL")
	}
	query := `SELECT ` + movementColumns + ` FROM movements`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY scheduled_date DESC, created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := []*entity.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var (
		m            entity.Movement
		movementType string
		source, dest *string
		date         *time.Time
		actual       decimal.NullDecimal
		props        []byte
	)
	if err := row.Scan(&m.ID, &movementType, &source, &dest, &date, &m.ScheduledDate,
		&m.ExpectedVolume, &actual, &props, &m.Carrier, &m.TicketNumber, &m.Notes, &m.PDFPath,
		&m.CreatedAt, &m.CreatedBy); err != nil {
		return nil, err
	}
	flow, err := entity.NewFlow(entity.MovementType(movementType), derefString(source), derefString(dest))
	if err != nil {
		return nil, fmt.Errorf("movement %s: %w", m.ID, err)
	}
	values, err := decodeProperties(props)
	if err != nil {
		return nil, err
	}
	m.Flow = flow
	m.Date = date
	m.ActualVolume = actual
	m.Properties = values
	return &m, nil
}
