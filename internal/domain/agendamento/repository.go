package agendamento

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ErrNotFound é devolvido pelo repositório quando a linha buscada não existe.
var ErrNotFound = errors.New("registro não encontrado")

type ListFilter struct {
	Page           int
	Limit          int
	Statuses       []string
	DateFrom       *time.Time
	DateTo         *time.Time
	UnitID         string
	ProfessionalID string
	CustomerID     string
	Query          string
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type StatsFilter struct {
	From           time.Time
	To             time.Time
	UnitID         string
	ProfessionalID string
}

// Repository é a capacidade de armazenamento que os casos de uso enxergam.
// Erros voltam crus do banco (exceto ErrNotFound); a tradução para a taxonomia
// fica nos casos de uso.
type Repository interface {
	// -------- Conflito (procedimento remoto atômico) --------
	HasTimeConflict(
		ctx context.Context,
		professionalID string,
		start time.Time,
		end time.Time,
		excludeID string,
	) (bool, error)

	// -------- Profissional --------
	GetProfessional(
		ctx context.Context,
		id string,
	) (*models.Professional, error)

	GetWorkingHours(
		ctx context.Context,
		professionalID string,
		weekday int,
	) (*models.WorkingHours, error)

	ListWorkingHours(
		ctx context.Context,
		professionalID string,
	) ([]models.WorkingHours, error)

	ReplaceWorkingHours(
		ctx context.Context,
		professionalID string,
		hours []models.WorkingHours,
	) error

	// -------- Agendamento (escrita) --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	InsertAppointmentServices(
		ctx context.Context,
		items []models.AppointmentService,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	UpdateAppointment(
		ctx context.Context,
		id string,
		patch map[string]any,
	) (*models.Appointment, error)

	// -------- Agendamento (leitura) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, int64, error)

	ListBookingsForDay(
		ctx context.Context,
		professionalID string,
		start time.Time,
		end time.Time,
		excludeID string,
	) ([]models.Appointment, error)

	ListAppointmentsForStats(
		ctx context.Context,
		f StatsFilter,
	) ([]models.Appointment, error)
}
