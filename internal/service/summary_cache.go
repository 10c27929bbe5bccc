package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	summaryCacheKey = "employees:summaries"
	summaryCacheTTL = 5 * time.Minute
)

// SummaryCache keeps the admin summary grid in Redis so repeated listings
// skip the store. All operations are best effort — a Redis outage degrades to
// plain DB reads. A nil *SummaryCache is valid and disables caching.
type SummaryCache struct {
	rdb *redis.Client
}

func NewSummaryCache(rdb *redis.Client) *SummaryCache {
	return &SummaryCache{rdb: rdb}
}

func (c *SummaryCache) Get(ctx context.Context) ([]dto.EmployeeSummaryResponse, bool) {
	if c == nil {
		return nil, false
	}
	cached, err := c.rdb.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var summaries []dto.EmployeeSummaryResponse
	if err := json.Unmarshal(cached, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *SummaryCache) Set(ctx context.Context, summaries []dto.EmployeeSummaryResponse) {
	if c == nil {
		return
	}
	b, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, summaryCacheKey, b, summaryCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("summary cache: set failed")
	}
}

// Invalidate drops the cached grid after any mutation that shows up in it.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, summaryCacheKey).Err(); err != nil {
		log.Debug().Err(err).Msg("summary cache: invalidate failed")
	}
}
