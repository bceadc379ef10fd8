package agendamento

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento/mocks"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func activeProfessional() *models.Professional {
	return &models.Professional{ID: professionalID, UnitID: unitID, Name: "Rafa", Active: true}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := new(mocks.Repository)
	ctx := context.Background()
	end := nine.Add(30 * time.Minute)

	repo.On("HasTimeConflict", ctx, professionalID, nine, end, "").Return(false, nil)
	repo.On("GetProfessional", ctx, professionalID).Return(activeProfessional(), nil)
	repo.On("InsertAppointment", ctx, mock.MatchedBy(func(ap *models.Appointment) bool {
		return ap.Status == "criado" && ap.EndTime.Equal(end) && ap.ID != ""
	})).Return(nil)
	repo.On("InsertAppointmentServices", ctx, mock.MatchedBy(func(items []models.AppointmentService) bool {
		return len(items) == 1 && items[0].AppointmentID != "" && items[0].AppliedPrice == 40
	})).Return(nil)

	ap, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(ctx, createInput())

	require.NoError(t, err)
	assert.Equal(t, "criado", ap.Status)
	assert.Len(t, ap.Services, 1)
	assert.Equal(t, ap.ID, ap.Services[0].AppointmentID)
	repo.AssertExpectations(t)
}

func TestCreateAppointment_Conflict(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("HasTimeConflict", mock.Anything, professionalID, mock.Anything, mock.Anything, "").Return(true, nil)

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.Equal(t, "Conflito de horário", err.Error())
	repo.AssertNotCalled(t, "InsertAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_ConflictCheckFails(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection reset"))

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.True(t, httperr.IsBusiness(err, "conflict_check_failed"))
	assert.ErrorContains(t, err, "connection reset")
	repo.AssertNotCalled(t, "InsertAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_InactiveProfessional(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).
		Return(&models.Professional{ID: professionalID, UnitID: unitID, Active: false}, nil)

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.True(t, httperr.IsBusiness(err, "professional_inactive"))
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	repo.AssertNotCalled(t, "InsertAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_UnknownProfessional(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(nil, domain.ErrNotFound)

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

func TestCreateAppointment_ProfessionalFromOtherUnit(t *testing.T) {
	repo := new(mocks.Repository)
	prof := activeProfessional()
	prof.UnitID = "6f1c1c2e-4f0e-4c8a-9a55-0c1a7e0b1a99"

	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(prof, nil)

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	repo.AssertNotCalled(t, "InsertAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_InvalidInput(t *testing.T) {
	repo := new(mocks.Repository)
	in := createInput()
	in.Services = nil

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "invalid_input"))
	repo.AssertNotCalled(t, "HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAppointment_ExclusionRace(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(activeProfessional(), nil)
	repo.On("InsertAppointment", mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23P01", ConstraintName: "agendamentos_sem_sobreposicao"})

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	repo.AssertNotCalled(t, "InsertAppointmentServices", mock.Anything, mock.Anything)
}

func TestCreateAppointment_RollsBackWhenServicesFail(t *testing.T) {
	repo := new(mocks.Repository)
	var insertedID string

	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(activeProfessional(), nil)
	repo.On("InsertAppointment", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			insertedID = args.Get(1).(*models.Appointment).ID
		}).
		Return(nil)
	repo.On("InsertAppointmentServices", mock.Anything, mock.Anything).Return(errors.New("fk violation"))
	repo.On("DeleteAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	assert.Nil(t, ap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serviços")
	assert.True(t, httperr.IsBusiness(err, "appointment_services_insert_failed"))
	repo.AssertCalled(t, "DeleteAppointment", mock.Anything, insertedID)
}

func TestCreateAppointment_RollbackFailureKeepsOriginalError(t *testing.T) {
	repo := new(mocks.Repository)

	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(activeProfessional(), nil)
	repo.On("InsertAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("InsertAppointmentServices", mock.Anything, mock.Anything).Return(errors.New("fk violation"))
	repo.On("DeleteAppointment", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_services_insert_failed"))
	assert.NotContains(t, err.Error(), "db down")
}

func TestCreateAppointment_RollbackSurvivesCancelledContext(t *testing.T) {
	repo := new(mocks.Repository)
	ctx, cancel := context.WithCancel(context.Background())

	repo.On("HasTimeConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetProfessional", mock.Anything, professionalID).Return(activeProfessional(), nil)
	repo.On("InsertAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("InsertAppointmentServices", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(context.Canceled)
	repo.On("DeleteAppointment", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), mock.Anything).Return(nil)

	_, err := NewCreateAppointment(repo, nil, nopLogger()).Execute(ctx, createInput())

	require.Error(t, err)
	repo.AssertExpectations(t)
}
