package agendamento

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// WorkWindow é o expediente de um dia já ancorado no calendário e no fuso da unidade.
type WorkWindow struct {
	Start      time.Time
	End        time.Time
	LunchStart time.Time
	LunchEnd   time.Time
	HasLunch   bool
}

func parseHM(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}

// ResolveWindow escolhe o expediente do dia: o cadastro do profissional quando existe,
// senão a janela padrão. ok=false significa dia de folga.
func ResolveWindow(
	day time.Time,
	wh *models.WorkingHours,
	defaultStart string,
	defaultEnd string,
) (WorkWindow, bool, error) {

	startHM, endHM := defaultStart, defaultEnd
	var lunchStartHM, lunchEndHM string

	if wh != nil {
		if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
			return WorkWindow{}, false, nil
		}
		startHM, endHM = wh.StartTime, wh.EndTime
		lunchStartHM, lunchEndHM = wh.LunchStart, wh.LunchEnd
	}

	start, err := parseHM(day, startHM)
	if err != nil {
		return WorkWindow{}, false, httperr.Validation("invalid_working_hours", "Expediente inválido")
	}
	end, err := parseHM(day, endHM)
	if err != nil || !end.After(start) {
		return WorkWindow{}, false, httperr.Validation("invalid_working_hours", "Expediente inválido")
	}

	w := WorkWindow{Start: start, End: end}

	if lunchStartHM != "" && lunchEndHM != "" {
		ls, err1 := parseHM(day, lunchStartHM)
		le, err2 := parseHM(day, lunchEndHM)
		if err1 == nil && err2 == nil && le.After(ls) {
			w.LunchStart, w.LunchEnd, w.HasLunch = ls, le, true
		}
	}

	return w, true, nil
}

// ValidateWorkingHours confere o formato HH:MM e a ordem dos horários antes de gravar.
func ValidateWorkingHours(wh models.WorkingHours) error {
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return httperr.Validation("invalid_weekday", "Dia da semana inválido")
	}
	if !wh.Active {
		return nil
	}
	ref := time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)
	w, ok, err := ResolveWindow(ref, &wh, "", "")
	if err != nil || !ok {
		return httperr.Validation("invalid_working_hours", "Expediente inválido")
	}
	if wh.LunchStart == "" && wh.LunchEnd == "" {
		return nil
	}
	if wh.LunchStart == "" || wh.LunchEnd == "" {
		return httperr.Validation("invalid_working_hours", "Intervalo de almoço incompleto")
	}

	// almoço precisa caber inteiro dentro do expediente
	ls, err1 := parseHM(ref, wh.LunchStart)
	le, err2 := parseHM(ref, wh.LunchEnd)
	if err1 != nil || err2 != nil || !le.After(ls) || ls.Before(w.Start) || le.After(w.End) {
		return httperr.Validation("invalid_lunch_break", "Intervalo de almoço inválido")
	}
	return nil
}
