package usecase

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hybrid-command-router/internal/model"
)

// answerCache keeps recently produced offline-capable answers keyed by
// the normalized command text. It doubles as the routing engine's cache
// probe, so the cached-answer rule and the lookup here always agree.
type answerCache struct {
	lru *expirable.LRU[string, model.CandidateResult]
}

func newAnswerCache(size int, ttl time.Duration) *answerCache {
	if size <= 0 {
		size = 256
	}
	return &answerCache{
		lru: expirable.NewLRU[string, model.CandidateResult](size, nil, ttl),
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Contains implements routing.CacheProbe.
func (c *answerCache) Contains(query string) bool {
	return c.lru.Contains(cacheKey(query))
}

func (c *answerCache) Get(query string) (model.CandidateResult, bool) {
	return c.lru.Get(cacheKey(query))
}

func (c *answerCache) Add(query string, res model.CandidateResult) {
	c.lru.Add(cacheKey(query), res)
}

// cacheable reports whether an answer is safe to replay verbatim.
// Time and device readings go stale immediately, so only stable
// intents are kept.
func cacheable(in model.Intent, src model.SourceLocation) bool {
	if src == model.SourceServer {
		return false
	}
	return in == model.IntentCalculation || in == model.IntentGeneral
}
