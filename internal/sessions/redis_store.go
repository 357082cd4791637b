package sessions

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

type RedisStore struct {
	client     rueidis.Client
	keyPrefix  string
	ttlSeconds int64
}

func NewRedisStore(client rueidis.Client, keyPrefix string, ttlSeconds int) *RedisStore {
	return &RedisStore{
		client:     client,
		keyPrefix:  keyPrefix,
		ttlSeconds: int64(ttlSeconds),
	}
}

func (r *RedisStore) Create(ctx context.Context, user SessionUser) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	cmd := r.client.B().Set().
		Key(r.keyPrefix + token).
		Value(string(payload)).
		ExSeconds(r.ttlSeconds).
		Build()

	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*SessionUser, error) {
	cmd := r.client.B().Get().Key(r.keyPrefix + token).Build()
	result := r.client.Do(ctx, cmd)

	payload, err := result.ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var user SessionUser
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	cmd := r.client.B().Del().Key(r.keyPrefix + token).Build()
	return r.client.Do(ctx, cmd).Error()
}
