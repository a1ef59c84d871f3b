package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var ts = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestTankRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewTankRepository(mock)
	tank := &entity.Tank{ID: "t1", Name: "Tank 1", Product: entity.DefaultProduct, CurrentVolume: decimal.NewFromInt(100), CreatedAt: ts, UpdatedAt: ts}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tanks")).
		WithArgs("t1", "Tank 1", "tank 1", entity.DefaultProduct, "", pgxmock.AnyArg(), []byte("[]"), ts, ts).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), tank))
}

func TestTankRepo_Create_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewTankRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tanks")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &entity.Tank{ID: "t1", Name: "Tank 1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTankRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewTankRepository(mock)

	rows := mock.NewRows([]string{"id", "name", "product", "location", "current_volume", "properties", "created_at", "updated_at"}).
		AddRow("t1", "Tank 1", entity.DefaultProduct, "North", decimal.RequireFromString("500.250"),
			[]byte(`[{"propertyId":"api","value":"25.5"},{"propertyId":"sulfur","value":null}]`), ts, ts)
	mock.ExpectQuery(regexp.QuoteMeta("FROM tanks WHERE id = $1")).WithArgs("t1").WillReturnRows(rows)

	tank, err := repo.GetByID(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, tank)
	assert.Equal(t, "North", tank.Location)
	assert.True(t, decimal.RequireFromString("500.25").Equal(tank.CurrentVolume))
	require.Len(t, tank.Properties, 2)
	assert.True(t, tank.Properties[0].Value.Valid)
	assert.True(t, decimal.RequireFromString("25.5").Equal(tank.Properties[0].Value.Decimal))
	assert.False(t, tank.Properties[1].Value.Valid)
}

func TestTankRepo_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewTankRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tanks WHERE id = $1")).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	tank, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, tank)
}

func TestTankRepo_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewTankRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tanks SET")).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), &entity.Tank{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementRepo_List_ByTank(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)

	dest := "t1"
	rows := mock.NewRows([]string{"id", "type", "source_tank_id", "destination_tank_id", "date", "scheduled_date",
		"expected_volume", "actual_volume", "properties", "carrier", "ticket_number", "notes", "pdf_path", "created_at", "created_by"}).
		AddRow("m1", "receive", (*string)(nil), &dest, (*time.Time)(nil), ts,
			decimal.NewFromInt(300), decimal.NullDecimal{}, []byte(`[]`), "Barge Co", "T-1", "", "", ts, "system")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (source_tank_id = $1 OR destination_tank_id = $1) AND date IS NULL ORDER BY scheduled_date DESC")).
		WithArgs("t1").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), repository.MovementFilter{TankID: "t1", PendingOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	m := list[0]
	assert.Equal(t, entity.Receive{DestinationTankID: "t1"}, m.Flow)
	assert.False(t, m.IsCompleted())
	assert.Equal(t, "Barge Co", m.Carrier)
	assert.Empty(t, m.Properties)
}

func TestMovementRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)
	m := &entity.Movement{
		ID:             "m1",
		Flow:           entity.Ship{SourceTankID: "t1"},
		ScheduledDate:  ts,
		ExpectedVolume: decimal.NewFromInt(50),
		CreatedAt:      ts,
		CreatedBy:      "ops",
	}

	src := "t1"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO movements")).
		WithArgs("m1", "ship", &src, (*string)(nil), (*time.Time)(nil), ts, pgxmock.AnyArg(), pgxmock.AnyArg(),
			[]byte("[]"), "", "", "", "", ts, "ops").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), m))
}

func TestMovementRepo_Delete_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewMovementRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movements")).WithArgs("m9").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "m9"), domain.ErrNotFound)
}

func TestPropertyRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := NewPropertyRepository(mock)

	rows := mock.NewRows([]string{"id", "name", "unit", "created_at"}).
		AddRow("api", "API", "°", ts).
		AddRow("sulfur", "Sulfur", "%", ts)
	mock.ExpectQuery(regexp.QuoteMeta("FROM property_definitions ORDER BY name")).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sulfur", list[1].Name)
	assert.Equal(t, "%", list[1].Unit)
}

func TestPropertyRepo_Update_Duplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewPropertyRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE property_definitions")).
		WithArgs("api", "Sulfur", "sulfur", "%").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Update(context.Background(), &entity.PropertyDefinition{ID: "api", Name: "Sulfur", Unit: "%"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuditLogRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := NewAuditLogRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM audit_log WHERE entity_type = $1")).
		WithArgs("tank").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp DESC LIMIT $2 OFFSET $3")).
		WithArgs("tank", 2, 0).
		WillReturnRows(mock.NewRows([]string{"id", "action", "entity_type", "entity_id", "user_id", "timestamp", "changes", "description"}).
			AddRow("a1", "reset", "tank", "t1", "ops", ts, []byte(`{"old":{"volume":"1"},"new":{"volume":"2"}}`), "Tank values reset from PDF measurement").
			AddRow("a2", "create", "tank", "t1", "ops", ts, []byte(`{"old":null,"new":{}}`), ""))

	list, total, err := repo.List(context.Background(), repository.AuditFilter{EntityType: "tank", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, entity.AuditActionReset, list[0].Action)
	assert.Equal(t, entity.AuditEntityTank, list[0].EntityType)
	assert.NotNil(t, list[0].Changes.Old)
	assert.Nil(t, list[1].Changes.Old)
}

func TestTxRunner_CommitsOnSuccess(t *testing.T) {
	mock := newMock(t)
	runner := NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movements")).WithArgs("m1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := runner.Run(context.Background(), func(_ repository.TankRepository, movRepo repository.MovementRepository) error {
		return movRepo.Delete(context.Background(), "m1")
	})
	require.NoError(t, err)
}

func TestTxRunner_RollsBackOnError(t *testing.T) {
	mock := newMock(t)
	runner := NewTxRunner(mock)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(repository.TankRepository, repository.MovementRepository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", migrateURL("postgres://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("postgresql://u@h/db"))
	assert.Equal(t, "pgx5://u@h/db", migrateURL("pgx5://u@h/db"))
}
