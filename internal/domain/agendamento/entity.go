package agendamento

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ServiceLine é um serviço pedido na criação, com preço e duração já congelados.
type ServiceLine struct {
	ServiceID       string  `json:"servico_id" validate:"required,uuid"`
	AppliedPrice    float64 `json:"preco_aplicado" validate:"gte=0"`
	AppliedDuration int     `json:"duracao_aplicada" validate:"gt=0"`
}

func TotalDuration(lines []ServiceLine) time.Duration {
	total := 0
	for _, l := range lines {
		total += l.AppliedDuration
	}
	return time.Duration(total) * time.Minute
}

// PersistedDuration soma as durações dos itens já gravados de um agendamento.
func PersistedDuration(items []models.AppointmentService) time.Duration {
	total := 0
	for _, it := range items {
		total += it.AppliedDuration
	}
	return time.Duration(total) * time.Minute
}

func EndTime(start time.Time, lines []ServiceLine) time.Time {
	return start.Add(TotalDuration(lines))
}

func BuildServiceRows(appointmentID string, lines []ServiceLine) []models.AppointmentService {
	rows := make([]models.AppointmentService, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, models.AppointmentService{
			AppointmentID:   appointmentID,
			ServiceID:       l.ServiceID,
			AppliedPrice:    l.AppliedPrice,
			AppliedDuration: l.AppliedDuration,
		})
	}
	return rows
}

// AppendNote concatena uma anotação às observações existentes, nunca substitui.
func AppendNote(current, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return current
	}
	if strings.TrimSpace(current) == "" {
		return note
	}
	return current + "\n" + note
}

func RescheduleNote(previousStart, newStart time.Time, notes string) string {
	line := fmt.Sprintf(
		"[Reagendado] %s -> %s",
		previousStart.Format("02/01/2006 15:04"),
		newStart.Format("02/01/2006 15:04"),
	)
	if n := strings.TrimSpace(notes); n != "" {
		line += ": " + n
	}
	return line
}

func CancellationNote(reason, cancelledBy string) string {
	if strings.TrimSpace(cancelledBy) == "" {
		cancelledBy = "sistema"
	}
	if strings.TrimSpace(reason) == "" {
		reason = "não informado"
	}
	return fmt.Sprintf("[Cancelado por %s] Motivo: %s", cancelledBy, reason)
}
