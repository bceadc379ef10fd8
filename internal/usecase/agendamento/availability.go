package agendamento

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

const maxSlotMinutes = 24 * 60

type CheckAvailability struct {
	repo         domain.Repository
	defaultStart string
	defaultEnd   string
}

// NewCheckAvailability recebe a janela usada quando o profissional não tem expediente
// cadastrado para o dia (ex.: "08:00" e "18:00").
func NewCheckAvailability(
	repo domain.Repository,
	defaultStart string,
	defaultEnd string,
) *CheckAvailability {
	return &CheckAvailability{
		repo:         repo,
		defaultStart: defaultStart,
		defaultEnd:   defaultEnd,
	}
}

// Execute espera in.Date já no fuso da unidade; o profissional precisa ser de in.UnitID.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if in.ProfessionalID == "" {
		return nil, httperr.Validation("missing_professional", "Profissional obrigatório")
	}
	if err := validators.Var(in.ProfessionalID, "uuid"); err != nil {
		return nil, httperr.Validation("invalid_professional", "Profissional inválido")
	}
	if in.DurationMin <= 0 || in.DurationMin > maxSlotMinutes {
		return nil, httperr.Validation("invalid_duration", "Duração inválida")
	}
	if in.Date.IsZero() {
		return nil, httperr.Validation("invalid_date", "Data inválida")
	}

	if _, err := findProfessional(ctx, uc.repo, in.ProfessionalID, in.UnitID); err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayBounds(in.Date)

	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, int(dayStart.Weekday()))
	if err != nil {
		return nil, httperr.Persistence("working_hours_failed", "Erro ao buscar expediente", err)
	}

	window, working, err := domain.ResolveWindow(dayStart, wh, uc.defaultStart, uc.defaultEnd)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, in.ProfessionalID, dayStart, dayEnd, in.ExcludeID)
	if err != nil {
		return nil, httperr.Persistence("availability_failed", "Erro ao calcular horários", err)
	}

	occupied := make([]domain.BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		occupied = append(occupied, domain.BookedSlot{
			ID:           b.ID,
			Start:        b.StartTime,
			End:          b.EndTime,
			CustomerName: b.Customer.Name,
			Status:       b.Status,
		})
	}

	slots := []domain.Slot{}
	if working {
		slots = domain.BuildSlots(window, minutes(in.DurationMin), occupied)
	}

	return &domain.Availability{
		ProfessionalID: in.ProfessionalID,
		Date:           dayStart.Format("2006-01-02"),
		DurationMin:    in.DurationMin,
		Occupied:       occupied,
		Slots:          slots,
	}, nil
}
