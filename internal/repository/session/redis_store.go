package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"personal-assistant-be/pkg/assistant/state"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore keeps transcripts in Redis so sessions survive restarts and
// are shared across instances. Used when REDIS_URL is configured.
func NewRedisStore(rdb *redis.Client) TranscriptStore {
	return &redisStore{
		rdb: rdb,
		ttl: 1 * time.Hour,
	}
}

func (s *redisStore) key(sessionId string) string {
	return fmt.Sprintf("assistant:session:%s", sessionId)
}

func (s *redisStore) Load(ctx context.Context, sessionId string) ([]state.Message, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(sessionId)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var transcript []state.Message
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		return nil, false, err
	}
	return transcript, true, nil
}

func (s *redisStore) Save(ctx context.Context, sessionId string, transcript []state.Message) error {
	raw, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(sessionId), raw, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, sessionId string) error {
	return s.rdb.Del(ctx, s.key(sessionId)).Err()
}
