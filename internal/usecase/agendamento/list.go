package agendamento

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListAppointmentsOutput struct {
	Appointments []models.Appointment `json:"appointments"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
	Limit        int                  `json:"limit"`
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.ListFilter,
) (*ListAppointmentsOutput, error) {

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}

	for _, s := range f.Statuses {
		if !domain.Status(s).Valid() {
			return nil, httperr.Validation("invalid_status", "Status inválido: "+s)
		}
	}

	if f.DateFrom != nil && f.DateTo != nil && f.DateTo.Before(*f.DateFrom) {
		return nil, httperr.Validation("invalid_date_range", "Período inválido")
	}

	apps, total, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, httperr.Persistence("list_failed", "Erro ao listar agendamentos", err)
	}
	if apps == nil {
		apps = []models.Appointment{}
	}

	return &ListAppointmentsOutput{
		Appointments: apps,
		Total:        total,
		Page:         f.Page,
		Limit:        f.Limit,
	}, nil
}
