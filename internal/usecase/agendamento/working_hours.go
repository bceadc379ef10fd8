package agendamento

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type WorkingHoursDay struct {
	Weekday    int    `json:"dia_semana" validate:"gte=0,lte=6"`
	StartTime  string `json:"inicio" validate:"hhmm"`
	EndTime    string `json:"fim" validate:"hhmm"`
	LunchStart string `json:"almoco_inicio" validate:"hhmm"`
	LunchEnd   string `json:"almoco_fim" validate:"hhmm"`
	Active     bool   `json:"ativo"`
}

type ReplaceWorkingHoursInput struct {
	ProfessionalID string            `validate:"required,uuid"`
	UnitID         string            `validate:"required"`
	Days           []WorkingHoursDay `validate:"max=7,dive"`

	ChangedBy string
}

type WorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWorkingHours(repo domain.Repository, audit *audit.Dispatcher) *WorkingHours {
	return &WorkingHours{repo: repo, audit: audit}
}

func (uc *WorkingHours) List(ctx context.Context, professionalID, unitID string) ([]models.WorkingHours, error) {
	if err := validators.Var(professionalID, "required,uuid"); err != nil {
		return nil, httperr.Validation("invalid_professional", "Profissional inválido")
	}
	if _, err := findProfessional(ctx, uc.repo, professionalID, unitID); err != nil {
		return nil, err
	}

	hours, err := uc.repo.ListWorkingHours(ctx, professionalID)
	if err != nil {
		return nil, httperr.Persistence("working_hours_failed", "Erro ao buscar expediente", err)
	}
	if hours == nil {
		hours = []models.WorkingHours{}
	}
	return hours, nil
}

// Replace substitui a semana inteira do profissional; dias ausentes ficam sem cadastro
// e passam a usar a janela padrão.
func (uc *WorkingHours) Replace(ctx context.Context, in ReplaceWorkingHoursInput) ([]models.WorkingHours, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(in.Days))
	hours := make([]models.WorkingHours, 0, len(in.Days))

	for _, d := range in.Days {
		if seen[d.Weekday] {
			return nil, httperr.Validation("duplicate_weekday", "Dia da semana repetido")
		}
		seen[d.Weekday] = true

		wh := models.WorkingHours{
			ProfessionalID: in.ProfessionalID,
			Weekday:        d.Weekday,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			LunchStart:     d.LunchStart,
			LunchEnd:       d.LunchEnd,
			Active:         d.Active,
		}
		if err := domain.ValidateWorkingHours(wh); err != nil {
			return nil, err
		}
		hours = append(hours, wh)
	}

	if _, err := findProfessional(ctx, uc.repo, in.ProfessionalID, in.UnitID); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, in.ProfessionalID, hours); err != nil {
		return nil, httperr.Persistence("working_hours_update_failed", "Erro ao salvar expediente", err)
	}

	uc.audit.Dispatch(audit.Event{
		UnitID:   in.UnitID,
		UserID:   in.ChangedBy,
		Action:   "horarios_atualizados",
		Entity:   "profissional",
		EntityID: in.ProfessionalID,
		Metadata: map[string]any{"dias": len(hours)},
	})

	return hours, nil
}
