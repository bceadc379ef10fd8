package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// UnitLocator resolve o fuso oficial de uma unidade.
type UnitLocator interface {
	Timezone(ctx context.Context, unitID string) (string, error)
}

// --------------------------------------------------
// Timezone centralizado por unidade
// --------------------------------------------------

// unitTimezone devolve o fuso da unidade do token; vazio cai no fuso padrão.
func unitTimezone(c *gin.Context, units UnitLocator) string {
	unitID := c.GetString(middleware.ContextUnitID)
	if units == nil || unitID == "" {
		return ""
	}
	tz, err := units.Timezone(c.Request.Context(), unitID)
	if err != nil {
		return ""
	}
	return tz
}

// parseDayOrDateTime aceita "2006-01-02" (início do dia) ou data/hora completa.
// dateOnly informa qual dos formatos foi usado.
func parseDayOrDateTime(value, tz string) (t time.Time, dateOnly bool, err error) {
	if d, err := timezone.ParseDate(value, tz); err == nil {
		return d, true, nil
	}
	t, err = timezone.ParseDateTime(value, tz)
	return t, false, err
}
