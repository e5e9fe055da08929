package keyring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// ErrKeyExhausted means every key of a provider failed or is resting.
var ErrKeyExhausted = errors.New("api keys exhausted")

// Migrate creates the key table of every provider.
func Migrate(db *gorm.DB) error {
	for _, p := range Providers {
		if err := db.Table(p.Table()).AutoMigrate(&Key{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", p.Table(), err)
		}
	}
	return nil
}

// List returns the keys of a provider in id order.
func List(ctx context.Context, db *gorm.DB, p Provider) ([]Key, error) {
	var keys []Key
	if err := db.WithContext(ctx).Table(p.Table()).Order("key_id").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", p, err)
	}
	return keys, nil
}

// Add stores a new key for a provider.
func Add(ctx context.Context, db *gorm.DB, p Provider, apiKey string) (Key, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return Key{}, errors.New("api key is empty")
	}
	key := Key{APIKey: apiKey}
	if err := db.WithContext(ctx).Table(p.Table()).Create(&key).Error; err != nil {
		return Key{}, fmt.Errorf("failed to add %s key: %w", p, err)
	}
	return key, nil
}

// Load builds a ring over the stored keys of a provider.
func Load(ctx context.Context, db *gorm.DB, p Provider, limiter *rate.Limiter) (*Ring, error) {
	keys, err := List(ctx, db, p)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, k.APIKey)
	}
	return NewRing(p, values, limiter), nil
}

// Ring rotates through the keys of one provider. A key whose call fails
// rests for the provider timeout.
type Ring struct {
	provider Provider
	keys     []string
	limiter  *rate.Limiter
	now      func() time.Time

	mu      sync.Mutex
	current int
	resting map[int]time.Time
}

// NewRing creates a ring. A nil limiter does not pace calls.
func NewRing(p Provider, keys []string, limiter *rate.Limiter) *Ring {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Ring{
		provider: p,
		keys:     keys,
		limiter:  limiter,
		now:      time.Now,
		resting:  make(map[int]time.Time),
	}
}

// Len returns the number of keys.
func (r *Ring) Len() int {
	return len(r.keys)
}

// Available returns the number of keys that are not resting.
func (r *Ring) Available() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.keys {
		if r.ready(i) {
			n++
		}
	}
	return n
}

func (r *Ring) ready(i int) bool {
	until, ok := r.resting[i]
	return !ok || !r.now().Before(until)
}

// Do calls fn with successive keys until one succeeds. Each key is tried at
// most once per call; when all have failed or are resting Do returns an error
// wrapping ErrKeyExhausted and every failure.
func (r *Ring) Do(ctx context.Context, fn func(ctx context.Context, key string) error) error {
	var errs []error
	for attempt := 0; attempt < len(r.keys); attempt++ {
		r.mu.Lock()
		i := r.current
		ready := r.ready(i)
		r.mu.Unlock()

		if ready {
			if err := r.limiter.Wait(ctx); err != nil {
				return err
			}
			err := fn(ctx, r.keys[i])
			if err == nil {
				return nil
			}
			errs = append(errs, err)

			r.mu.Lock()
			r.resting[i] = r.now().Add(r.provider.Timeout())
			r.mu.Unlock()
		}

		r.mu.Lock()
		r.current = (i + 1) % len(r.keys)
		r.mu.Unlock()
	}
	if len(errs) == 0 {
		return fmt.Errorf("%w: %s has no usable key", ErrKeyExhausted, r.provider)
	}
	return fmt.Errorf("%w: %s after %d failures: %w", ErrKeyExhausted, r.provider, len(errs), errors.Join(errs...))
}
