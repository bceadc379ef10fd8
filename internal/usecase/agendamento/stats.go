package agendamento

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type GetStatsInput struct {
	Period   domain.Period
	From     *time.Time
	To       *time.Time
	Location *time.Location

	UnitID         string
	ProfessionalID string
}

// StatsCache guarda estatísticas já reduzidas; ausência de cache é permitida.
type StatsCache interface {
	Get(ctx context.Context, key string) (*domain.Stats, bool)
	Set(ctx context.Context, key string, st *domain.Stats)
}

type GetStats struct {
	repo  domain.Repository
	cache StatsCache
	now   func() time.Time
}

func NewGetStats(repo domain.Repository, cache StatsCache) *GetStats {
	return &GetStats{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

func (uc *GetStats) Execute(ctx context.Context, in GetStatsInput) (*domain.Stats, error) {
	f, err := uc.resolveFilter(in)
	if err != nil {
		return nil, err
	}

	key := statsKey(f)
	if uc.cache != nil {
		if st, ok := uc.cache.Get(ctx, key); ok {
			return st, nil
		}
	}

	rows, err := uc.repo.ListAppointmentsForStats(ctx, f)
	if err != nil {
		return nil, httperr.Persistence("stats_failed", "Erro ao calcular estatísticas", err)
	}

	st := domain.ReduceStats(rows, domain.DefaultTopServices)
	st.From, st.To = f.From, f.To

	if uc.cache != nil {
		uc.cache.Set(ctx, key, &st)
	}

	return &st, nil
}

func (uc *GetStats) resolveFilter(in GetStatsInput) (domain.StatsFilter, error) {
	f := domain.StatsFilter{
		UnitID:         in.UnitID,
		ProfessionalID: in.ProfessionalID,
	}

	if in.From != nil || in.To != nil {
		if in.From == nil || in.To == nil || !in.To.After(*in.From) {
			return f, httperr.Validation("invalid_date_range", "Período inválido")
		}
		f.From, f.To = *in.From, *in.To
		return f, nil
	}

	loc := in.Location
	if loc == nil {
		loc = time.Local
	}

	from, to, err := domain.ResolvePeriod(in.Period, uc.now().In(loc))
	if err != nil {
		return f, err
	}
	f.From, f.To = from, to
	return f, nil
}

func statsKey(f domain.StatsFilter) string {
	return fmt.Sprintf(
		"agendamentos:stats:%s:%s:%d:%d",
		f.UnitID, f.ProfessionalID, f.From.Unix(), f.To.Unix(),
	)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
