package keyring

import (
	"context"
	"errors"
	"testing"
	"time"

	"gameframe/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestStore(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	ctx := context.Background()

	_, err = Add(ctx, db, ProviderTwitter, " key-one ")
	require.NoError(t, err)
	_, err = Add(ctx, db, ProviderTwitter, "key-two")
	require.NoError(t, err)
	_, err = Add(ctx, db, ProviderTwitter, "  ")
	assert.Error(t, err)

	keys, err := List(ctx, db, ProviderTwitter)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "key-one", keys[0].APIKey)

	empty, err := List(ctx, db, ProviderIGDB)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ring, err := Load(ctx, db, ProviderTwitter, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, ring.Len())
}

func TestRing_Do(t *testing.T) {
	ctx := context.Background()
	errQuota := errors.New("quota exceeded")

	t.Run("Rotates to a working key", func(t *testing.T) {
		ring := NewRing(ProviderNewsAPI, []string{"a", "b", "c"}, nil)
		var tried []string
		err := ring.Do(ctx, func(_ context.Context, key string) error {
			tried = append(tried, key)
			if key == "b" {
				return nil
			}
			return errQuota
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, tried)
		assert.Equal(t, 2, ring.Available())
	})

	t.Run("Bounded", func(t *testing.T) {
		ring := NewRing(ProviderNewsAPI, []string{"a", "b"}, nil)
		calls := 0
		err := ring.Do(ctx, func(context.Context, string) error {
			calls++
			return errQuota
		})
		assert.ErrorIs(t, err, ErrKeyExhausted)
		assert.ErrorIs(t, err, errQuota)
		assert.Equal(t, 2, calls, "each key is tried once")
		assert.Zero(t, ring.Available())

		calls = 0
		err = ring.Do(ctx, func(context.Context, string) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, ErrKeyExhausted)
		assert.Zero(t, calls, "resting keys are skipped")
	})

	t.Run("Keys recover after the timeout", func(t *testing.T) {
		now := time.Date(2018, 3, 1, 12, 0, 0, 0, time.UTC)
		ring := NewRing(ProviderTwitter, []string{"a"}, nil)
		ring.now = func() time.Time { return now }

		require.Error(t, ring.Do(ctx, func(context.Context, string) error { return errQuota }))
		assert.Zero(t, ring.Available())

		now = now.Add(ProviderTwitter.Timeout())
		assert.Equal(t, 1, ring.Available())
		assert.NoError(t, ring.Do(ctx, func(context.Context, string) error { return nil }))
	})

	t.Run("No keys", func(t *testing.T) {
		ring := NewRing(ProviderGoogle, nil, nil)
		assert.ErrorIs(t, ring.Do(ctx, func(context.Context, string) error { return nil }), ErrKeyExhausted)
	})

	t.Run("Limiter honours cancellation", func(t *testing.T) {
		ring := NewRing(ProviderIGDB, []string{"a"}, rate.NewLimiter(rate.Every(time.Hour), 1))
		require.NoError(t, ring.Do(ctx, func(context.Context, string) error { return nil }))

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := ring.Do(cancelled, func(context.Context, string) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider("igdb")
	require.NoError(t, err)
	assert.Equal(t, "key_igdb", p.Table())
	assert.Equal(t, 30*24*time.Hour, p.Timeout())

	_, err = ParseProvider("myspace")
	assert.Error(t, err)

	assert.Equal(t, "****cdef", Mask("abcdef"))
	assert.Equal(t, "****", Mask("abc"))
}
