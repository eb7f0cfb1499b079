// Package session implements the server-side session store backing the opaque
// cookie auth. Sessions live in redis so they survive process restarts and are
// shared across replicas; the cookie only ever carries a random identifier.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Odenfis/taytaApp/internal/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when the identifier is unknown or expired.
var ErrNoSession = errors.New("sesión no encontrada")

const keyPrefix = "sesion:"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores the principal under a fresh random identifier and returns it.
func (s *Store) Create(ctx context.Context, p dto.Principal) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get resolves a session identifier to its principal and slides the TTL so an
// active user is not logged out mid-shift.
func (s *Store) Get(ctx context.Context, id string) (*dto.Principal, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	var p dto.Principal
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}
	_ = s.rdb.Expire(ctx, keyPrefix+id, s.ttl).Err()
	return &p, nil
}

// Destroy removes the session; unknown identifiers are a no-op.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

// TTL exposes the configured session lifetime (cookie Max-Age must match).
func (s *Store) TTL() time.Duration { return s.ttl }
