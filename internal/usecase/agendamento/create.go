package agendamento

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID     string `validate:"required,uuid"`
	ProfessionalID string `validate:"required,uuid"`
	UnitID         string `validate:"required,uuid"`

	Start time.Time `validate:"required"`
	Notes string    `validate:"max=2000"`

	Services []domain.ServiceLine `validate:"min=1,dive"`

	CreatedBy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	end := domain.EndTime(in.Start, in.Services)

	// --------------------------------------------------
	// 1️⃣ Conflito de horário (procedimento remoto)
	// --------------------------------------------------
	conflict, err := uc.repo.HasTimeConflict(ctx, in.ProfessionalID, in.Start, end, "")
	if err != nil {
		return nil, httperr.Persistence("conflict_check_failed", "Erro ao verificar conflito de horário", err)
	}
	if conflict {
		return nil, errTimeConflict()
	}

	// --------------------------------------------------
	// 2️⃣ Profissional ativo e da mesma unidade
	// --------------------------------------------------
	prof, err := findProfessional(ctx, uc.repo, in.ProfessionalID, in.UnitID)
	if err != nil {
		return nil, err
	}
	if !prof.Active {
		return nil, httperr.Validation("professional_inactive", "Profissional inativo")
	}

	// --------------------------------------------------
	// 3️⃣ Cabeçalho (status inicial centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:             uuid.NewString(),
		CustomerID:     in.CustomerID,
		ProfessionalID: in.ProfessionalID,
		UnitID:         in.UnitID,
		StartTime:      in.Start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, errTimeConflict()
		}
		return nil, httperr.Persistence("appointment_insert_failed", "Erro ao criar agendamento", err)
	}

	// --------------------------------------------------
	// 4️⃣ Itens de serviço
	// --------------------------------------------------
	items := domain.BuildServiceRows(ap.ID, in.Services)

	if err := uc.repo.InsertAppointmentServices(ctx, items); err != nil {
		// 5️⃣ Compensação: o banco não oferece transação entre as duas escritas
		uc.compensate(ctx, ap.ID)
		return nil, httperr.Persistence(
			"appointment_services_insert_failed",
			"Erro ao adicionar serviços ao agendamento",
			err,
		)
	}

	ap.Services = items

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UnitID:   ap.UnitID,
		UserID:   in.CreatedBy,
		Action:   "agendamento_criado",
		Entity:   "agendamento",
		EntityID: ap.ID,
		Metadata: map[string]any{
			"profissional_id": ap.ProfessionalID,
			"inicio":          ap.StartTime,
			"fim":             ap.EndTime,
		},
	})

	return ap, nil
}

// compensate apaga o cabeçalho órfão; falha aqui só é registrada, o erro original segue.
func (uc *CreateAppointment) compensate(ctx context.Context, id string) {
	if err := uc.repo.DeleteAppointment(context.WithoutCancel(ctx), id); err != nil {
		uc.log.Error("rollback do agendamento falhou",
			zap.String("agendamento_id", id),
			zap.Error(err),
		)
		return
	}
	uc.log.Warn("agendamento removido após falha nos serviços", zap.String("agendamento_id", id))
}
