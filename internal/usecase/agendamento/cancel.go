package agendamento

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelAppointmentInput struct {
	ID          string `validate:"required"`
	UnitID      string `validate:"required"`
	Reason      string `validate:"max=500"`
	CancelledBy string `validate:"max=100"`
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute não estorna venda nem estoque; isso pertence ao módulo de vendas.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) (*models.Appointment, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	ap, err := findAppointment(ctx, uc.repo, in.ID, in.UnitID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateAppointment(ctx, ap.ID, map[string]any{
		"status":      string(domain.StatusCancelled),
		"observacoes": domain.AppendNote(ap.Notes, domain.CancellationNote(in.Reason, in.CancelledBy)),
	})
	if err != nil {
		return nil, updateFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UnitID:   ap.UnitID,
		UserID:   in.CancelledBy,
		Action:   "agendamento_cancelado",
		Entity:   "agendamento",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"motivo":          in.Reason,
			"status_anterior": ap.Status,
		},
	})

	return updated, nil
}
