package queuestore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisEntryPrefix   = "modqueue/entry/"
	redisPendingPrefix = "modqueue/pending/"
	redisRecentPrefix  = "modqueue/recent/"
)

// Redis-backed queue. Entries live in plain keys; the pending order is three
// lists, one per priority, drained high to low. Assumes a single moderation
// service instance owns the queue (matches the engine's single-writer model).
type RedisQueueStore struct {
	Client *redis.Client
}

func NewRedisQueueStore(redisURL string) (*RedisQueueStore, error) {
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
	return &RedisQueueStore{Client: rdb}, nil
}

func pendingListKey(priority string) string {
	if PriorityRank(priority) == 0 {
		priority = PriorityLow
	}
	return redisPendingPrefix + priority
}

func (s *RedisQueueStore) putEntry(ctx context.Context, e *Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, redisEntryPrefix+e.ID, raw, 0).Err()
}

func (s *RedisQueueStore) Add(ctx context.Context, entry Entry) error {
	if err := s.putEntry(ctx, &entry); err != nil {
		return err
	}
	return s.Client.RPush(ctx, pendingListKey(entry.Priority), entry.ID).Err()
}

func (s *RedisQueueStore) Get(ctx context.Context, id string) (*Entry, error) {
	raw, err := s.Client.Get(ctx, redisEntryPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *RedisQueueStore) Pending(ctx context.Context) ([]Entry, error) {
	var out []Entry
	for _, priority := range []string{PriorityHigh, PriorityMedium, PriorityLow} {
		ids, err := s.Client.LRange(ctx, pendingListKey(priority), 0, -1).Result()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		for _, id := range ids {
			e, err := s.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if e != nil {
				out = append(out, *e)
			}
		}
	}
	return out, nil
}

func (s *RedisQueueStore) MarkProcessed(ctx context.Context, id, moderatorID, action, note string) (bool, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if e == nil || e.Status != StatusPending {
		return false, nil
	}
	now := time.Now().UTC()
	e.Status = StatusProcessed
	e.ModeratorID = moderatorID
	e.Action = action
	e.ActionNote = note
	e.ProcessedAt = &now
	if err := s.putEntry(ctx, e); err != nil {
		return false, err
	}
	if err := s.Client.LRem(ctx, pendingListKey(e.Priority), 0, id).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisQueueStore) PushRecent(ctx context.Context, contentType, text string) error {
	key := redisRecentPrefix + contentType
	multi := s.Client.Pipeline()
	multi.LPush(ctx, key, text)
	multi.LTrim(ctx, key, 0, int64(RecentWindow-1))
	_, err := multi.Exec(ctx)
	return err
}

func (s *RedisQueueStore) Recent(ctx context.Context, contentType string) ([]string, error) {
	out, err := s.Client.LRange(ctx, redisRecentPrefix+contentType, 0, int64(RecentWindow-1)).Result()
	if err == redis.Nil {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	return out, nil
}
