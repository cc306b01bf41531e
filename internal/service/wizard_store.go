package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when a wizard session does not exist or
// its TTL has elapsed.
var ErrSessionNotFound = errors.New("wizard session not found")

const wizardKeyPrefix = "wizard:session:"

// WizardStore persists booking wizard sessions in Redis as JSON blobs with
// a sliding TTL. Abandoned sessions expire on their own; no cleanup job is
// needed.
type WizardStore interface {
	Save(ctx context.Context, sessionID string, v any) error
	Find(ctx context.Context, sessionID string, dest any) error
	Delete(ctx context.Context, sessionID string) error
}

type wizardStore struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewWizardStore(client *redis.Client, log *logrus.Logger, ttl time.Duration) WizardStore {
	return &wizardStore{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (s *wizardStore) Save(ctx context.Context, sessionID string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal wizard session: %w", err)
	}
	if err := s.client.Set(ctx, wizardKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to save wizard session %s: %+v", sessionID, err)
		return fmt.Errorf("save wizard session: %w", err)
	}
	return nil
}

func (s *wizardStore) Find(ctx context.Context, sessionID string, dest any) error {
	data, err := s.client.Get(ctx, wizardKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("load wizard session: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal wizard session: %w", err)
	}
	return nil
}

func (s *wizardStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, wizardKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete wizard session: %w", err)
	}
	return nil
}
