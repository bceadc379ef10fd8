package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
)

const (
	profID  = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a02"
	unitID  = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a03"
	apID    = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a05"
	otherID = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a06"
)

func setupAgendamentoRepository(t *testing.T) (*AgendamentoGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewAgendamentoGormRepository(db), mock
}

// sqlLike monta a regex a partir de trechos literais, aceitando qualquer coisa entre eles.
func sqlLike(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(quoted, ".*")
}

func emptyAppointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "status", "data_hora_inicio", "data_hora_fim"})
}

// --------------------------------------------------
// Conflito
// --------------------------------------------------

func TestHasTimeConflict_CallsProcedure(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(sqlLike("SELECT verificar_conflito_horario($1::uuid, $2, $3, $4::uuid)")).
		WithArgs(profID, start, end, apID).
		WillReturnRows(sqlmock.NewRows([]string{"verificar_conflito_horario"}).AddRow(true))

	conflict, err := repo.HasTimeConflict(context.Background(), profID, start, end, apID)

	require.NoError(t, err)
	assert.True(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTimeConflict_EmptyExcludeIsNull(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(sqlLike("SELECT verificar_conflito_horario(")).
		WithArgs(profID, start, end, nil).
		WillReturnRows(sqlmock.NewRows([]string{"verificar_conflito_horario"}).AddRow(false))

	conflict, err := repo.HasTimeConflict(context.Background(), profID, start, end, "")

	require.NoError(t, err)
	assert.False(t, conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTimeConflict_DriverError(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectQuery(sqlLike("verificar_conflito_horario")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.HasTimeConflict(context.Background(), profID, time.Now(), time.Now().Add(time.Hour), "")

	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func TestUpdateAppointment_NoRowsIsNotFound(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectExec(sqlLike(`UPDATE "agendamentos" SET`, "WHERE id = ")).
		WithArgs("cancelado", sqlmock.AnyArg(), apID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ap, err := repo.UpdateAppointment(context.Background(), apID, map[string]any{"status": "cancelado"})

	assert.Nil(t, ap)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAppointment_RemovesItemsThenHeader(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(sqlLike(`DELETE FROM "agendamento_servicos" WHERE agendamento_id = $1`)).
		WithArgs(apID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(sqlLike(`DELETE FROM "agendamentos" WHERE id = $1`)).
		WithArgs(apID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAppointment(context.Background(), apID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAppointment_RollsBackOnFailure(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(sqlLike(`DELETE FROM "agendamento_servicos"`)).
		WithArgs(apID).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := repo.DeleteAppointment(context.Background(), apID)

	assert.ErrorContains(t, err, "lock timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func TestGetAppointment_MissingIsNotFound(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectQuery(sqlLike(`SELECT * FROM "agendamentos" WHERE id = $1`)).
		WithArgs(apID, 1).
		WillReturnRows(emptyAppointmentRows())

	ap, err := repo.GetAppointment(context.Background(), apID)

	assert.Nil(t, ap)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointments_EveryFilterBecomesOnePredicate(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)

	f := domain.ListFilter{
		Page:           3,
		Limit:          20,
		Statuses:       []string{"criado", "confirmado"},
		DateFrom:       &from,
		DateTo:         &to,
		UnitID:         unitID,
		ProfessionalID: profID,
		CustomerID:     otherID,
		Query:          "  corte  ",
	}

	where := []string{
		"agendamentos.status IN ($1,$2)",
		"agendamentos.data_hora_inicio >= $3",
		"agendamentos.data_hora_inicio <= $4",
		"agendamentos.unidade_id = $5",
		"agendamentos.profissional_id = $6",
		"agendamentos.cliente_id = $7",
		`agendamentos.observacoes ILIKE $8 ESCAPE '\'`,
		`nome ILIKE $9 ESCAPE '\'`,
	}
	args := []driver.Value{"criado", "confirmado", from, to, unitID, profID, otherID, "%corte%", "%corte%"}

	mock.ExpectQuery(sqlLike(append([]string{`SELECT count(*) FROM "agendamentos" WHERE`}, where...)...)).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))

	mock.ExpectQuery(sqlLike(append(append([]string{`SELECT * FROM "agendamentos" WHERE`}, where...),
		"ORDER BY data_hora_inicio DESC", "LIMIT $10", "OFFSET $11")...)).
		WithArgs(append(args, 20, 40)...).
		WillReturnRows(emptyAppointmentRows())

	apps, total, err := repo.ListAppointments(context.Background(), f)

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Equal(t, int64(45), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointments_NoFiltersHasNoWhere(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectQuery(`^SELECT count\(\*\) FROM "agendamentos"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(sqlLike(`SELECT * FROM "agendamentos" ORDER BY data_hora_inicio DESC LIMIT $1`)).
		WithArgs(20).
		WillReturnRows(emptyAppointmentRows())

	_, total, err := repo.ListAppointments(context.Background(), domain.ListFilter{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointments_SearchTermIsLiteral(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)

	mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "agendamentos" WHERE`, "ILIKE $1 ESCAPE", "ILIKE $2 ESCAPE")).
		WithArgs(`%50\%\_off\\%`, `%50\%\_off\\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(sqlLike(`SELECT * FROM "agendamentos" WHERE`, "ILIKE $1 ESCAPE", "LIMIT $3")).
		WithArgs(`%50\%\_off\\%`, `%50\%\_off\\%`, 20).
		WillReturnRows(emptyAppointmentRows())

	_, _, err := repo.ListAppointments(context.Background(), domain.ListFilter{Page: 1, Limit: 20, Query: `50%_off\`})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%maria%", likePattern("maria"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\tmp%`, likePattern(`c:\tmp`))
}

func TestListBookingsForDay_OverlapPredicate(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)
	start := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	mock.ExpectQuery(sqlLike(
		`SELECT * FROM "agendamentos" WHERE`,
		"profissional_id = $1 AND status <> $2 AND data_hora_inicio < $3 AND data_hora_fim > $4",
		"id <> $5",
		"ORDER BY data_hora_inicio ASC",
	)).
		WithArgs(profID, "cancelado", end, start, apID).
		WillReturnRows(emptyAppointmentRows())

	apps, err := repo.ListBookingsForDay(context.Background(), profID, start, end, apID)

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookingsForDay_WithoutExclusion(t *testing.T) {
	repo, mock := setupAgendamentoRepository(t)
	start := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	mock.ExpectQuery(`data_hora_fim > \$4 ORDER BY`).
		WithArgs(profID, "cancelado", end, start).
		WillReturnRows(emptyAppointmentRows())

	_, err := repo.ListBookingsForDay(context.Background(), profID, start, end, "")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
