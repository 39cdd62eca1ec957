package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/repository/memory"
)

func TestBuildStats(t *testing.T) {
	counts := map[entity.Sentiment]int64{
		entity.SentimentPositive: 4,
		entity.SentimentNegative: 3,
		entity.SentimentNeutral:  2,
		entity.SentimentUnknown:  1,
	}

	stats := buildStats(counts)

	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, 40.0, stats.PositivePercent)
	assert.Equal(t, 30.0, stats.NegativePercent)
	assert.Equal(t, 20.0, stats.NeutralPercent)
	assert.Equal(t, 10.0, stats.UnknownPercent)
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := buildStats(map[entity.Sentiment]int64{})

	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, 0.0, stats.PositivePercent)
	assert.Equal(t, 0.0, stats.NegativePercent)
	assert.Equal(t, 0.0, stats.NeutralPercent)
	assert.Equal(t, 0.0, stats.UnknownPercent)
}

func TestBuildStatsRounding(t *testing.T) {
	counts := map[entity.Sentiment]int64{
		entity.SentimentPositive: 1,
		entity.SentimentNegative: 1,
		entity.SentimentNeutral:  1,
	}

	stats := buildStats(counts)
	assert.Equal(t, 33.3, stats.PositivePercent)
}

func TestGetDashboardFilters(t *testing.T) {
	factory := newFakeFactory()
	cache := memory.NewStatsRepository()
	svc := NewDashboardService(factory, cache)

	session := seedSession(factory.st, 1, 0)
	area := "Checkout"
	factory.st.feedbacks = append(factory.st.feedbacks,
		&entity.Feedback{Id: uuid.New(), SessionId: session.Id, SessionNumber: 1, Text: "a", Sentiment: entity.SentimentPositive, ProductArea: &area},
		&entity.Feedback{Id: uuid.New(), SessionId: session.Id, SessionNumber: 1, Text: "b", Sentiment: entity.SentimentNegative},
	)

	positive := entity.SentimentPositive
	res, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{Sentiment: &positive})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Stats.Total)
	require.Len(t, res.Feedbacks, 1)
	assert.Equal(t, "POS", res.Feedbacks[0].Sentiment)
	assert.Equal(t, "Positivo", res.Feedbacks[0].SentimentLabel)

	// Session list and product areas stay unfiltered.
	assert.Len(t, res.Sessions, 1)
	assert.Equal(t, []string{"Checkout"}, res.ProductAreas)
}

func TestGetDashboardCachesUnfilteredStats(t *testing.T) {
	factory := newFakeFactory()
	cache := memory.NewStatsRepository()
	svc := NewDashboardService(factory, cache)

	session := seedSession(factory.st, 1, 2)

	res, err := svc.GetDashboard(context.Background(), dto.DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Stats.Total)

	// More data arrives but the cache hasn't been invalidated, so the
	// unfiltered stats are served stale.
	factory.st.feedbacks = append(factory.st.feedbacks, &entity.Feedback{
		Id: uuid.New(), SessionId: session.Id, SessionNumber: 1, Text: "c", Sentiment: entity.SentimentNeutral,
	})
	res, err = svc.GetDashboard(context.Background(), dto.DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Stats.Total)

	cache.Invalidate()
	res, err = svc.GetDashboard(context.Background(), dto.DashboardFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Stats.Total)
}
