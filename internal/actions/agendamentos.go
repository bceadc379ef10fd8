// Package actions expõe as operações de agendamento no formato uniforme
// {success, data, error, message}; nenhum erro ou panic escapa daqui.
package actions

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/agendamento"
)

type Options struct {
	AgendaStart string
	AgendaEnd   string
	StatsCache  uc.StatsCache
}

type Agendamentos struct {
	create       *uc.CreateAppointment
	reschedule   *uc.RescheduleAppointment
	updateStatus *uc.UpdateAppointmentStatus
	cancel       *uc.CancelAppointment
	list         *uc.ListAppointments
	get          *uc.GetAppointment
	availability *uc.CheckAvailability
	stats        *uc.GetStats

	log *zap.Logger
}

func NewAgendamentos(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
	opts Options,
) *Agendamentos {
	return &Agendamentos{
		create:       uc.NewCreateAppointment(repo, dispatcher, log),
		reschedule:   uc.NewRescheduleAppointment(repo, dispatcher),
		updateStatus: uc.NewUpdateAppointmentStatus(repo, dispatcher),
		cancel:       uc.NewCancelAppointment(repo, dispatcher),
		list:         uc.NewListAppointments(repo),
		get:          uc.NewGetAppointment(repo),
		availability: uc.NewCheckAvailability(repo, opts.AgendaStart, opts.AgendaEnd),
		stats:        uc.NewGetStats(repo, opts.StatsCache),
		log:          log,
	}
}

func (a *Agendamentos) CreateAppointment(ctx context.Context, in uc.CreateAppointmentInput) httpresp.Result[models.Appointment] {
	return run(a, "criar", "Agendamento criado com sucesso", func() (*models.Appointment, error) {
		return a.create.Execute(ctx, in)
	})
}

func (a *Agendamentos) RescheduleAppointment(ctx context.Context, in uc.RescheduleAppointmentInput) httpresp.Result[models.Appointment] {
	return run(a, "reagendar", "Agendamento reagendado com sucesso", func() (*models.Appointment, error) {
		return a.reschedule.Execute(ctx, in)
	})
}

func (a *Agendamentos) UpdateAppointmentStatus(ctx context.Context, in uc.UpdateAppointmentStatusInput) httpresp.Result[models.Appointment] {
	return run(a, "atualizar_status", "Status atualizado com sucesso", func() (*models.Appointment, error) {
		return a.updateStatus.Execute(ctx, in)
	})
}

func (a *Agendamentos) CancelAppointment(ctx context.Context, in uc.CancelAppointmentInput) httpresp.Result[models.Appointment] {
	return run(a, "cancelar", "Agendamento cancelado com sucesso", func() (*models.Appointment, error) {
		return a.cancel.Execute(ctx, in)
	})
}

func (a *Agendamentos) ListAppointments(ctx context.Context, f domain.ListFilter) httpresp.Result[uc.ListAppointmentsOutput] {
	return run(a, "listar", "", func() (*uc.ListAppointmentsOutput, error) {
		return a.list.Execute(ctx, f)
	})
}

func (a *Agendamentos) GetAppointmentByID(ctx context.Context, id, unitID string) httpresp.Result[models.Appointment] {
	return run(a, "buscar", "", func() (*models.Appointment, error) {
		return a.get.Execute(ctx, id, unitID)
	})
}

func (a *Agendamentos) CheckAvailability(ctx context.Context, in domain.AvailabilityInput) httpresp.Result[domain.Availability] {
	return run(a, "disponibilidade", "", func() (*domain.Availability, error) {
		return a.availability.Execute(ctx, in)
	})
}

func (a *Agendamentos) GetStats(ctx context.Context, in uc.GetStatsInput) httpresp.Result[domain.Stats] {
	return run(a, "estatisticas", "", func() (*domain.Stats, error) {
		return a.stats.Execute(ctx, in)
	})
}

func run[T any](
	a *Agendamentos,
	action string,
	okMessage string,
	fn func() (*T, error),
) (res httpresp.Result[T]) {

	defer func() {
		if p := recover(); p != nil {
			// o valor do panic fica só no log
			err := httperr.Persistence("internal_error", "Erro inesperado", nil)
			a.log.Error("panic em ação de agendamento", zap.String("action", action), zap.Any("panic", p))
			metrics.RecordAction(action, err)
			res = httpresp.Fail[T](err)
		}
	}()

	data, err := fn()
	metrics.RecordAction(action, err)

	if err != nil {
		if httperr.IsKind(err, httperr.KindPersistence) || httperr.CodeOf(err) == "internal_error" {
			a.log.Error("ação de agendamento falhou", zap.String("action", action), zap.Error(err))
		} else {
			a.log.Info("ação de agendamento recusada",
				zap.String("action", action),
				zap.String("code", httperr.CodeOf(err)),
			)
		}
		return httpresp.Fail[T](err)
	}

	return httpresp.Ok(data, okMessage)
}
