package reportstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisReportPrefix  = "report/"
	redisContentPrefix = "reports/content/"
)

type RedisReportStore struct {
	Client *redis.Client
}

func NewRedisReportStore(redisURL string) (*RedisReportStore, error) {
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
	return &RedisReportStore{Client: rdb}, nil
}

func (s *RedisReportStore) putReport(ctx context.Context, r *Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, redisReportPrefix+r.ID, raw, 0).Err()
}

func (s *RedisReportStore) Add(ctx context.Context, report Report) error {
	if err := s.putReport(ctx, &report); err != nil {
		return err
	}
	return s.Client.RPush(ctx, redisContentPrefix+report.ContentID, report.ID).Err()
}

func (s *RedisReportStore) Get(ctx context.Context, id string) (*Report, error) {
	raw, err := s.Client.Get(ctx, redisReportPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RedisReportStore) ListByContent(ctx context.Context, contentID string) ([]Report, error) {
	ids, err := s.Client.LRange(ctx, redisContentPrefix+contentID, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	out := make([]Report, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *RedisReportStore) Resolve(ctx context.Context, id, status, moderatorID, resolution string) (bool, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if r == nil || r.Status != StatusPending {
		return false, nil
	}
	now := time.Now().UTC()
	r.Status = status
	r.ModeratorID = moderatorID
	r.Resolution = resolution
	r.ResolvedAt = &now
	if err := s.putReport(ctx, r); err != nil {
		return false, err
	}
	return true, nil
}
