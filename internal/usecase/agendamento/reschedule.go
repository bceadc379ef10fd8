package agendamento

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type RescheduleAppointmentInput struct {
	ID       string    `validate:"required"`
	UnitID   string    `validate:"required"`
	NewStart time.Time `validate:"required"`
	Notes    string    `validate:"max=1000"`

	RescheduledBy string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute move o agendamento mantendo a duração total dos serviços já gravados.
// O status não é alterado.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	ap, err := findAppointment(ctx, uc.repo, in.ID, in.UnitID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	duration := domain.PersistedDuration(ap.Services)
	if duration <= 0 {
		return nil, httperr.Validation("appointment_without_services", "Agendamento sem serviços")
	}
	newEnd := in.NewStart.Add(duration)

	conflict, err := uc.repo.HasTimeConflict(ctx, ap.ProfessionalID, in.NewStart, newEnd, ap.ID)
	if err != nil {
		return nil, httperr.Persistence("conflict_check_failed", "Erro ao verificar conflito de horário", err)
	}
	if conflict {
		return nil, errTimeConflict()
	}

	notes := domain.AppendNote(ap.Notes, domain.RescheduleNote(ap.StartTime, in.NewStart, in.Notes))

	updated, err := uc.repo.UpdateAppointment(ctx, ap.ID, map[string]any{
		"data_hora_inicio": in.NewStart,
		"data_hora_fim":    newEnd,
		"observacoes":      notes,
	})
	if err != nil {
		return nil, updateFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UnitID:   ap.UnitID,
		UserID:   in.RescheduledBy,
		Action:   "agendamento_reagendado",
		Entity:   "agendamento",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"inicio_anterior": ap.StartTime,
			"novo_inicio":     in.NewStart,
		},
	})

	return updated, nil
}
