package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/agendamento"
)

type WorkingHoursHandler struct {
	hours *uc.WorkingHours
}

func NewWorkingHoursHandler(hours *uc.WorkingHours) *WorkingHoursHandler {
	return &WorkingHoursHandler{hours: hours}
}

type WorkingHoursUpdateRequest struct {
	Days []uc.WorkingHoursDay `json:"dias" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	hours, err := h.hours.List(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUnitID))
	if err != nil {
		httpresp.OK(c, httpresp.Fail[[]models.WorkingHours](err))
		return
	}

	httpresp.OK(c, httpresp.Ok(&hours, ""))
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos")
		return
	}

	hours, err := h.hours.Replace(c.Request.Context(), uc.ReplaceWorkingHoursInput{
		ProfessionalID: c.Param("id"),
		Days:           req.Days,
		ChangedBy:      c.GetString(middleware.ContextUserID),
		UnitID:         c.GetString(middleware.ContextUnitID),
	})
	if err != nil {
		httpresp.OK(c, httpresp.Fail[[]models.WorkingHours](err))
		return
	}

	httpresp.OK(c, httpresp.Ok(&hours, "Expediente atualizado"))
}
