package agendamento

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento/mocks"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type memoryStatsCache struct {
	items map[string]*domain.Stats
	sets  int
}

func (c *memoryStatsCache) Get(_ context.Context, key string) (*domain.Stats, bool) {
	st, ok := c.items[key]
	return st, ok
}

func (c *memoryStatsCache) Set(_ context.Context, key string, st *domain.Stats) {
	c.items[key] = st
	c.sets++
}

func fixedStats(repo domain.Repository, cache StatsCache) *GetStats {
	uc := NewGetStats(repo, cache)
	uc.now = func() time.Time { return time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestGetStats_MonthByDefault(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForStats", mock.Anything, domain.StatsFilter{
		From:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		UnitID: unitID,
	}).Return([]models.Appointment{
		{Status: "criado"},
		{Status: "confirmado"},
		{Status: "concluido"},
		{Status: "cancelado"},
		{Status: "cancelado"},
		{Status: "faltou"},
	}, nil)

	st, err := fixedStats(repo, nil).Execute(context.Background(), GetStatsInput{
		UnitID:   unitID,
		Location: time.UTC,
	})

	require.NoError(t, err)
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, 1, st.Completed)
	assert.Equal(t, 2, st.Cancelled)
	assert.Equal(t, 1, st.NoShows)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), st.From)
	repo.AssertExpectations(t)
}

func TestGetStats_UsesCache(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForStats", mock.Anything, mock.Anything).Return([]models.Appointment{{Status: "criado"}}, nil).Once()
	cache := &memoryStatsCache{items: map[string]*domain.Stats{}}

	uc := fixedStats(repo, cache)
	in := GetStatsInput{Period: domain.PeriodToday, Location: time.UTC}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, 1, cache.sets)
	repo.AssertNumberOfCalls(t, "ListAppointmentsForStats", 1)
}

func TestGetStats_ExplicitRange(t *testing.T) {
	repo := new(mocks.Repository)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.On("ListAppointmentsForStats", mock.Anything, domain.StatsFilter{From: from, To: to}).Return(nil, nil)

	st, err := fixedStats(repo, nil).Execute(context.Background(), GetStatsInput{From: &from, To: &to})

	require.NoError(t, err)
	assert.Zero(t, st.Total)

	_, err = fixedStats(repo, nil).Execute(context.Background(), GetStatsInput{From: &to, To: &from})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestGetStats_InvalidPeriod(t *testing.T) {
	_, err := fixedStats(new(mocks.Repository), nil).Execute(context.Background(), GetStatsInput{Period: "decada"})

	assert.True(t, httperr.IsBusiness(err, "invalid_period"))
}

func TestGetStats_StoreError(t *testing.T) {
	repo := new(mocks.Repository)
	repo.On("ListAppointmentsForStats", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := fixedStats(repo, nil).Execute(context.Background(), GetStatsInput{Location: time.UTC})

	assert.True(t, httperr.IsBusiness(err, "stats_failed"))
}
