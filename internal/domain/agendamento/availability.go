package agendamento

import "time"

type AvailabilityInput struct {
	ProfessionalID string
	UnitID         string
	Date           time.Time
	DurationMin    int
	ExcludeID      string
}

// Slot é uma janela candidata; não é persistida.
type Slot struct {
	Start     string `json:"inicio"`
	End       string `json:"fim"`
	Available bool   `json:"disponivel"`
}

type BookedSlot struct {
	ID           string    `json:"id"`
	Start        time.Time `json:"inicio"`
	End          time.Time `json:"fim"`
	CustomerName string    `json:"cliente_nome"`
	Status       string    `json:"status"`
}

type Availability struct {
	ProfessionalID string       `json:"profissional_id"`
	Date           string       `json:"data"`
	DurationMin    int          `json:"duracao_minutos"`
	Occupied       []BookedSlot `json:"horarios_ocupados"`
	Slots          []Slot       `json:"horarios_disponiveis"`
}

// Overlaps usa intervalos semiabertos [start, end): encostar na borda não é conflito.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DayBounds devolve [00:00 do dia, 00:00 do dia seguinte) no fuso de date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// BuildSlots fatia a janela de trabalho em blocos de duration e marca os que colidem
// com o almoço ou com algum agendamento.
func BuildSlots(w WorkWindow, duration time.Duration, booked []BookedSlot) []Slot {
	slots := make([]Slot, 0)
	if duration <= 0 {
		return slots
	}

	for cur := w.Start; !cur.Add(duration).After(w.End); cur = cur.Add(duration) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		available := true
		if w.HasLunch && Overlaps(slotStart, slotEnd, w.LunchStart, w.LunchEnd) {
			available = false
		}

		for _, b := range booked {
			if !available {
				break
			}
			if Overlaps(slotStart, slotEnd, b.Start, b.End) {
				available = false
			}
		}

		slots = append(slots, Slot{
			Start:     slotStart.Format("15:04"),
			End:       slotEnd.Format("15:04"),
			Available: available,
		})
	}

	return slots
}
