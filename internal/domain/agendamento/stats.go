package agendamento

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Period string

const (
	PeriodToday Period = "hoje"
	PeriodWeek  Period = "semana"
	PeriodMonth Period = "mes"
	PeriodYear  Period = "ano"
)

const DefaultTopServices = 5

// ResolvePeriod converte um período nomeado em [from, to) relativo a now.
// A semana começa na segunda-feira.
func ResolvePeriod(p Period, now time.Time) (time.Time, time.Time, error) {
	today, tomorrow := DayBounds(now)

	switch p {
	case PeriodToday:
		return today, tomorrow, nil
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case PeriodMonth, "":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0), nil
	case PeriodYear:
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(1, 0, 0), nil
	}

	return time.Time{}, time.Time{}, httperr.Validation("invalid_period", "Período inválido")
}

type ServiceRanking struct {
	ServiceID string  `json:"servico_id"`
	Name      string  `json:"nome"`
	Count     int     `json:"quantidade"`
	Revenue   float64 `json:"receita"`
}

type Stats struct {
	From time.Time `json:"data_inicio"`
	To   time.Time `json:"data_fim"`

	Total     int            `json:"total_agendamentos"`
	ByStatus  map[string]int `json:"agendamentos_por_status"`
	Completed int            `json:"agendamentos_concluidos"`
	Cancelled int            `json:"agendamentos_cancelados"`
	NoShows   int            `json:"agendamentos_faltas"`

	CompletedRevenue float64          `json:"receita_concluida"`
	TopServices      []ServiceRanking `json:"servicos_mais_agendados"`
}

// ReduceStats agrega em memória as linhas já buscadas; nenhuma consulta extra por grupo.
func ReduceStats(rows []models.Appointment, topN int) Stats {
	st := Stats{
		Total:    len(rows),
		ByStatus: make(map[string]int, len(AllStatuses())),
	}
	for _, s := range AllStatuses() {
		st.ByStatus[string(s)] = 0
	}

	ranking := make(map[string]*ServiceRanking)

	for _, ap := range rows {
		st.ByStatus[ap.Status]++

		switch Status(ap.Status) {
		case StatusCompleted:
			st.Completed++
		case StatusCancelled:
			st.Cancelled++
		case StatusNoShow:
			st.NoShows++
		}

		for _, item := range ap.Services {
			if Status(ap.Status) == StatusCompleted {
				st.CompletedRevenue += item.AppliedPrice
			}

			r, ok := ranking[item.ServiceID]
			if !ok {
				r = &ServiceRanking{ServiceID: item.ServiceID, Name: item.Service.Name}
				ranking[item.ServiceID] = r
			}
			r.Count++
			r.Revenue += item.AppliedPrice
		}
	}

	top := make([]ServiceRanking, 0, len(ranking))
	for _, r := range ranking {
		top = append(top, *r)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		if top[i].Revenue != top[j].Revenue {
			return top[i].Revenue > top[j].Revenue
		}
		return top[i].Name < top[j].Name
	})
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}
	st.TopServices = top

	return st
}
