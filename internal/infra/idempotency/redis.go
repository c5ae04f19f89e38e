package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"highway-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:bookings:"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Record is what a key holds: a claim while the first request runs, then its response.
type Record struct {
	Status      Status `json:"status"`
	RequestHash string `json:"request_hash"`
	StatusCode  int    `json:"status_code,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

var ErrRecordVanished = errs.New("idempotency record vanished between claim and read")

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Claim takes the key with SETNX. When someone else holds it, their record is returned.
func (s *RedisStore) Claim(ctx context.Context, key, requestHash string) (*Record, bool, error) {
	claim, err := json.Marshal(Record{Status: StatusInProgress, RequestHash: requestHash})
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to encode idempotency claim")
	}

	acquired, err := s.client.SetNX(ctx, keyPrefix+key, claim, s.ttl).Result()
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to claim idempotency key")
	}
	if acquired {
		return nil, true, nil
	}

	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, ErrRecordVanished
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read idempotency record")
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode idempotency record")
	}
	return &rec, false, nil
}

func (s *RedisStore) Complete(ctx context.Context, key, requestHash string, statusCode int, body []byte) error {
	data, err := json.Marshal(Record{
		Status:      StatusCompleted,
		RequestHash: requestHash,
		StatusCode:  statusCode,
		Body:        body,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode idempotency record")
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store idempotency record")
	}
	return nil
}

// Release frees a key whose request did not succeed so the client can retry.
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "failed to release idempotency key")
	}
	return nil
}
