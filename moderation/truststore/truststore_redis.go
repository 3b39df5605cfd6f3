package truststore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisTrustPrefix string = "trust/"

// Redis-backed trust store. Assumes a single writer per user at a time (the
// engine processes moderator actions for one queue item synchronously), so
// the read-modify-write in Adjust is not wrapped in a transaction.
type RedisTrustStore struct {
	Client *redis.Client
}

func NewRedisTrustStore(redisURL string) (*RedisTrustStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(context.TODO()).Result()
	if err != nil {
		return nil, err
	}
	return &RedisTrustStore{Client: rdb}, nil
}

func (s *RedisTrustStore) Get(ctx context.Context, userID string) (*TrustScore, error) {
	raw, err := s.Client.Get(ctx, redisTrustPrefix+userID).Bytes()
	if err == redis.Nil {
		return defaultTrustScore(userID), nil
	} else if err != nil {
		return nil, err
	}
	var ts TrustScore
	if err := json.Unmarshal(raw, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *RedisTrustStore) Adjust(ctx context.Context, userID, action string, points int) (*TrustScore, error) {
	ts, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyAdjustment(ts, action, points, time.Now().UTC())
	raw, err := json.Marshal(ts)
	if err != nil {
		return nil, err
	}
	if err := s.Client.Set(ctx, redisTrustPrefix+userID, raw, 0).Err(); err != nil {
		return nil, err
	}
	return ts, nil
}
