package session

import (
	"context"
	"time"

	"personal-assistant-be/pkg/assistant/state"

	"github.com/patrickmn/go-cache"
)

type cacheStore struct {
	cache *cache.Cache
}

// NewCacheStore keeps transcripts in process memory with a 1 hour idle
// expiry, purging expired entries every 10 minutes. The default for a
// single-instance deployment.
func NewCacheStore() TranscriptStore {
	return &cacheStore{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (s *cacheStore) Load(ctx context.Context, sessionId string) ([]state.Message, bool, error) {
	if x, found := s.cache.Get(sessionId); found {
		return x.([]state.Message), true, nil
	}
	return nil, false, nil
}

func (s *cacheStore) Save(ctx context.Context, sessionId string, transcript []state.Message) error {
	s.cache.Set(sessionId, transcript, cache.DefaultExpiration)
	return nil
}

func (s *cacheStore) Delete(ctx context.Context, sessionId string) error {
	s.cache.Delete(sessionId)
	return nil
}
