package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository is a testify mock of agendamento.Repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) HasTimeConflict(ctx context.Context, professionalID string, start, end time.Time, excludeID string) (bool, error) {
	args := m.Called(ctx, professionalID, start, end, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Professional)
	return p, args.Error(1)
}

func (m *Repository) GetWorkingHours(ctx context.Context, professionalID string, weekday int) (*models.WorkingHours, error) {
	args := m.Called(ctx, professionalID, weekday)
	wh, _ := args.Get(0).(*models.WorkingHours)
	return wh, args.Error(1)
}

func (m *Repository) ListWorkingHours(ctx context.Context, professionalID string) ([]models.WorkingHours, error) {
	args := m.Called(ctx, professionalID)
	hours, _ := args.Get(0).([]models.WorkingHours)
	return hours, args.Error(1)
}

func (m *Repository) ReplaceWorkingHours(ctx context.Context, professionalID string, hours []models.WorkingHours) error {
	args := m.Called(ctx, professionalID, hours)
	return args.Error(0)
}

func (m *Repository) InsertAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *Repository) InsertAppointmentServices(ctx context.Context, items []models.AppointmentService) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *Repository) DeleteAppointment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Repository) UpdateAppointment(ctx context.Context, id string, patch map[string]any) (*models.Appointment, error) {
	args := m.Called(ctx, id, patch)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

func (m *Repository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	ap, _ := args.Get(0).(*models.Appointment)
	return ap, args.Error(1)
}

func (m *Repository) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	args := m.Called(ctx, f)
	apps, _ := args.Get(0).([]models.Appointment)
	return apps, args.Get(1).(int64), args.Error(2)
}

func (m *Repository) ListBookingsForDay(ctx context.Context, professionalID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	args := m.Called(ctx, professionalID, start, end, excludeID)
	apps, _ := args.Get(0).([]models.Appointment)
	return apps, args.Error(1)
}

func (m *Repository) ListAppointmentsForStats(ctx context.Context, f domain.StatsFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, f)
	apps, _ := args.Get(0).([]models.Appointment)
	return apps, args.Error(1)
}

var _ domain.Repository = (*Repository)(nil)
