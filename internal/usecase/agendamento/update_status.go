package agendamento

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateAppointmentStatusInput struct {
	ID     string `validate:"required"`
	UnitID string `validate:"required"`
	Status string `validate:"required"`

	ChangedBy string
}

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateAppointmentStatusInput,
) (*models.Appointment, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	ap, err := findAppointment(ctx, uc.repo, in.ID, in.UnitID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(ap.Status)
	requested := domain.Status(in.Status)

	if err := domain.CanTransition(current, requested); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateAppointment(ctx, ap.ID, map[string]any{
		"status": string(requested),
	})
	if err != nil {
		return nil, updateFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UnitID:   ap.UnitID,
		UserID:   in.ChangedBy,
		Action:   "agendamento_status_alterado",
		Entity:   "agendamento",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"de":   current,
			"para": requested,
		},
	})

	return updated, nil
}
