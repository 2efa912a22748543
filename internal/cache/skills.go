package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const ActiveSkillsKey = "skills:active"

// SkillCache хранит список активных навыков в Redis.
// Ошибки Redis не пробрасываются: кэш только ускоряет чтение.
type SkillCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewSkillCache создает кэш навыков.
func NewSkillCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *SkillCache {
	return &SkillCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

type cachedSkill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// GetActiveSkills возвращает закэшированный список и признак попадания.
func (c *SkillCache) GetActiveSkills(ctx context.Context) ([]*domain.Skill, bool) {
	raw, err := c.client.Get(ctx, ActiveSkillsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SkillCacheRequests.WithLabelValues("miss").Inc()
		} else {
			metrics.SkillCacheRequests.WithLabelValues("error").Inc()
			c.logger.WithError(err).Warn("skill cache read failed")
		}
		return nil, false
	}

	var cached []cachedSkill
	if err := json.Unmarshal(raw, &cached); err != nil {
		metrics.SkillCacheRequests.WithLabelValues("error").Inc()
		c.logger.WithError(err).Warn("skill cache payload is corrupted")
		return nil, false
	}

	skills := make([]*domain.Skill, 0, len(cached))
	for _, s := range cached {
		skills = append(skills, &domain.Skill{ID: s.ID, Name: s.Name, IsActive: s.IsActive})
	}

	metrics.SkillCacheRequests.WithLabelValues("hit").Inc()
	return skills, true
}

// SetActiveSkills сохраняет список с TTL.
func (c *SkillCache) SetActiveSkills(ctx context.Context, skills []*domain.Skill) {
	cached := make([]cachedSkill, 0, len(skills))
	for _, s := range skills {
		cached = append(cached, cachedSkill{ID: s.ID, Name: s.Name, IsActive: s.IsActive})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		c.logger.WithError(err).Warn("failed to encode skill cache")
		return
	}

	if err := c.client.Set(ctx, ActiveSkillsKey, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("skill cache write failed")
	}
}

// InvalidateActiveSkills удаляет закэшированный список.
func (c *SkillCache) InvalidateActiveSkills(ctx context.Context) {
	if err := c.client.Del(ctx, ActiveSkillsKey).Err(); err != nil {
		c.logger.WithError(err).Warn("skill cache invalidation failed")
	}
}
