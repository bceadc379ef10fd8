package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/actions"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/agendamento"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	actions *actions.Agendamentos
	units   UnitLocator
}

func NewAgendamentoHandler(a *actions.Agendamentos, units UnitLocator) *AgendamentoHandler {
	return &AgendamentoHandler{actions: a, units: units}
}

// ======================================================
// REQUESTS
// ======================================================

type createAgendamentoRequest struct {
	CustomerID     string               `json:"cliente_id" binding:"required"`
	ProfessionalID string               `json:"profissional_id" binding:"required"`
	Start          string               `json:"data_hora_inicio" binding:"required"`
	Notes          string               `json:"observacoes"`
	Services       []domain.ServiceLine `json:"servicos" binding:"required"`
}

type reagendarRequest struct {
	Start string `json:"data_hora_inicio" binding:"required"`
	Notes string `json:"observacoes"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

type cancelarRequest struct {
	Reason string `json:"motivo"`
}

// ======================================================
// HELPERS
// ======================================================

// bindOptionalJSON aceita corpo vazio.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func actorName(c *gin.Context) string {
	if name := c.GetString(middleware.ContextUserName); name != "" {
		return name
	}
	return c.GetString(middleware.ContextUserID)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req createAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return
	}

	start, err := timezone.ParseDateTime(req.Start, unitTimezone(c, h.units))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida")
		return
	}

	res := h.actions.CreateAppointment(c.Request.Context(), uc.CreateAppointmentInput{
		CustomerID:     req.CustomerID,
		ProfessionalID: req.ProfessionalID,
		UnitID:         c.GetString(middleware.ContextUnitID),
		Start:          start,
		Notes:          req.Notes,
		Services:       req.Services,
		CreatedBy:      c.GetString(middleware.ContextUserID),
	})

	httpresp.Created(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	tz := unitTimezone(c, h.units)

	f := domain.ListFilter{
		Page:           queryInt(c, "page", 1),
		Limit:          queryInt(c, "limit", uc.DefaultPageSize),
		UnitID:         c.GetString(middleware.ContextUnitID),
		ProfessionalID: c.Query("profissional_id"),
		CustomerID:     c.Query("cliente_id"),
		Query:          c.Query("q"),
	}

	if s := c.Query("status"); s != "" {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Statuses = append(f.Statuses, part)
			}
		}
	}

	if v := c.Query("data_inicio"); v != "" {
		from, _, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida")
			return
		}
		f.DateFrom = &from
	}

	if v := c.Query("data_fim"); v != "" {
		to, dateOnly, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida")
			return
		}
		// data sem hora inclui o dia inteiro
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		f.DateTo = &to
	}

	httpresp.OK(c, h.actions.ListAppointments(c.Request.Context(), f))
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AgendamentoHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.actions.GetAppointmentByID(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.ContextUnitID),
	))
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AgendamentoHandler) Reschedule(c *gin.Context) {
	var req reagendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return
	}

	start, err := timezone.ParseDateTime(req.Start, unitTimezone(c, h.units))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida")
		return
	}

	res := h.actions.RescheduleAppointment(c.Request.Context(), uc.RescheduleAppointmentInput{
		ID:            c.Param("id"),
		UnitID:        c.GetString(middleware.ContextUnitID),
		NewStart:      start,
		Notes:         req.Notes,
		RescheduledBy: c.GetString(middleware.ContextUserID),
	})

	httpresp.OK(c, res)
}

// ======================================================
// STATUS
// ======================================================

func (h *AgendamentoHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return
	}

	res := h.actions.UpdateAppointmentStatus(c.Request.Context(), uc.UpdateAppointmentStatusInput{
		ID:        c.Param("id"),
		UnitID:    c.GetString(middleware.ContextUnitID),
		Status:    req.Status,
		ChangedBy: c.GetString(middleware.ContextUserID),
	})

	httpresp.OK(c, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AgendamentoHandler) Cancel(c *gin.Context) {
	var req cancelarRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return
	}

	res := h.actions.CancelAppointment(c.Request.Context(), uc.CancelAppointmentInput{
		ID:          c.Param("id"),
		UnitID:      c.GetString(middleware.ContextUnitID),
		Reason:      req.Reason,
		CancelledBy: actorName(c),
	})

	httpresp.OK(c, res)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AgendamentoHandler) Availability(c *gin.Context) {
	tz := unitTimezone(c, h.units)

	date, err := timezone.ParseDate(c.Query("data"), tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida")
		return
	}

	res := h.actions.CheckAvailability(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: c.Query("profissional_id"),
		UnitID:         c.GetString(middleware.ContextUnitID),
		Date:           date,
		DurationMin:    queryInt(c, "duracao", 30),
		ExcludeID:      c.Query("excluir_id"),
	})

	httpresp.OK(c, res)
}

// ======================================================
// STATS
// ======================================================

func (h *AgendamentoHandler) Stats(c *gin.Context) {
	tz := unitTimezone(c, h.units)

	in := uc.GetStatsInput{
		Period:         domain.Period(c.Query("periodo")),
		Location:       timezone.Location(tz),
		UnitID:         c.GetString(middleware.ContextUnitID),
		ProfessionalID: c.Query("profissional_id"),
	}

	if v := c.Query("data_inicio"); v != "" {
		from, _, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida")
			return
		}
		in.From = &from
	}

	if v := c.Query("data_fim"); v != "" {
		to, dateOnly, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida")
			return
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1)
		}
		in.To = &to
	}

	httpresp.OK(c, h.actions.GetStats(c.Request.Context(), in))
}
