package agendamento

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

func errAppointmentNotFound() error {
	return httperr.NotFound("appointment_not_found", "Agendamento não encontrado")
}

func errTimeConflict() error {
	return httperr.Conflict("time_conflict", "Conflito de horário")
}

func validateInput(in any) error {
	if err := validators.Struct(in); err != nil {
		return httperr.Validation("invalid_input", "Dados inválidos: "+err.Error())
	}
	return nil
}

// findAppointment responde NotFound tanto para id inexistente quanto para
// agendamento de outra unidade.
func findAppointment(
	ctx context.Context,
	repo domain.Repository,
	id string,
	unitID string,
) (*models.Appointment, error) {

	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && (ap == nil || ap.UnitID != unitID)) {
		return nil, errAppointmentNotFound()
	}
	if err != nil {
		return nil, httperr.Persistence("appointment_lookup_failed", "Erro ao buscar agendamento", err)
	}
	return ap, nil
}

// findProfessional só enxerga profissionais da unidade informada.
func findProfessional(
	ctx context.Context,
	repo domain.Repository,
	id string,
	unitID string,
) (*models.Professional, error) {

	prof, err := repo.GetProfessional(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && (prof == nil || prof.UnitID != unitID)) {
		return nil, httperr.Validation("professional_not_found", "Profissional não encontrado")
	}
	if err != nil {
		return nil, httperr.Persistence("professional_lookup_failed", "Erro ao buscar profissional", err)
	}
	return prof, nil
}

// updateFailed traduz a falha de um UPDATE, reconhecendo a constraint de sobreposição.
func updateFailed(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errAppointmentNotFound()
	case httperr.IsExclusionConflict(err):
		return errTimeConflict()
	}
	return httperr.Persistence("appointment_update_failed", "Erro ao atualizar agendamento", err)
}
