package agendamento

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute só devolve agendamentos da unidade informada.
func (uc *GetAppointment) Execute(ctx context.Context, id, unitID string) (*models.Appointment, error) {
	if id == "" || unitID == "" {
		return nil, errAppointmentNotFound()
	}
	return findAppointment(ctx, uc.repo, id, unitID)
}
