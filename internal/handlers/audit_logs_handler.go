package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

// AuditLister lê a trilha de auditoria de uma unidade.
type AuditLister interface {
	List(ctx context.Context, f audit.Filter) (*audit.Page, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs  AuditLister
	units UnitLocator
}

func NewAuditLogsHandler(logs AuditLister, units UnitLocator) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, units: units}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	tz := unitTimezone(c, h.units)

	f := audit.Filter{
		UnitID:   c.GetString(middleware.ContextUnitID),
		Action:   c.Query("acao"),
		Entity:   c.Query("entidade"),
		EntityID: c.Query("entidade_id"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 50),
	}

	// --------------------------------------------------
	// Filtros de data (dias inteiros no fuso da unidade)
	// --------------------------------------------------

	if v := c.Query("de"); v != "" {
		from, _, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida")
			return
		}
		f.From = &from
	}

	if v := c.Query("ate"); v != "" {
		to, dateOnly, err := parseDayOrDateTime(v, tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida")
			return
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1)
		}
		f.To = &to
	}

	page, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httpresp.OK(c, httpresp.Fail[audit.Page](
			httperr.Persistence("audit_list_failed", "Erro ao listar logs", err),
		))
		return
	}

	httpresp.OK(c, httpresp.Ok(page, ""))
}
