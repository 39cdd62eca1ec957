package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"sentia-be/internal/dto"
)

const statsCacheKey = "dashboard_stats_unfiltered"

// StatsRepository memoizes the unfiltered dashboard stats. Ingestions and
// deletions invalidate it through the session-events consumer, so the TTL is
// only a safety net.
type StatsRepository struct {
	cache *cache.Cache
}

func NewStatsRepository() *StatsRepository {
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &StatsRepository{
		cache: c,
	}
}

func (r *StatsRepository) Save(stats *dto.SentimentStats) {
	r.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)
}

func (r *StatsRepository) Get() (*dto.SentimentStats, bool) {
	if x, found := r.cache.Get(statsCacheKey); found {
		return x.(*dto.SentimentStats), true
	}
	return nil, false
}

func (r *StatsRepository) Invalidate() {
	r.cache.Delete(statsCacheKey)
}
