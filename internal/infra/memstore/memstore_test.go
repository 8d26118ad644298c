//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rv-portal/internal/domain/signup"
	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func email(t *testing.T, s string) signup.Email {
	t.Helper()
	e, err := signup.NewEmail(s)
	require.NoError(t, err)
	return e
}

func TestPINStore_SaveOverwrites(t *testing.T) {
	store := memstore.NewPINStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := email(t, "a@partner.example.com")

	store.Save(signup.NewPINRecord(e, "first", now, time.Minute))
	store.Save(signup.NewPINRecord(email(t, "A@Partner.example.com"), "second", now, time.Minute))
	assert.Equal(t, 1, store.Len())

	rec := store.Get(e)
	require.NotNil(t, rec)
	assert.Equal(t, "second", rec.PINHash())

	assert.Nil(t, store.Get(email(t, "b@partner.example.com")))
	assert.ErrorIs(t, store.Consume(email(t, "b@partner.example.com"), rec, now), signup.ErrPINNotFound)
}

func TestPINStore_GetReturnsCopy(t *testing.T) {
	store := memstore.NewPINStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := email(t, "a@partner.example.com")
	store.Save(signup.NewPINRecord(e, "h", now, time.Minute))

	store.Get(e).MarkUsed(now)

	assert.False(t, store.Get(e).Used())
}

func TestPINStore_Consume(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	e := email(t, "a@partner.example.com")

	t.Run("marks the record used once", func(t *testing.T) {
		store := memstore.NewPINStore()
		store.Save(signup.NewPINRecord(e, "h", now, time.Minute))
		seen := store.Get(e)

		require.NoError(t, store.Consume(e, seen, now))
		assert.True(t, store.Get(e).Used())
		assert.ErrorIs(t, store.Consume(e, seen, now), signup.ErrPINAlreadyUsed)
	})

	t.Run("record replaced after it was read", func(t *testing.T) {
		store := memstore.NewPINStore()
		store.Save(signup.NewPINRecord(e, "old", now, time.Minute))
		seen := store.Get(e)
		store.Save(signup.NewPINRecord(e, "new", now.Add(time.Second), time.Minute))

		assert.ErrorIs(t, store.Consume(e, seen, now), signup.ErrPINMismatch)
		assert.False(t, store.Get(e).Used())
	})
}

func TestPINStore_ConcurrentVerifyConsumesOnce(t *testing.T) {
	store := memstore.NewPINStore()
	now := time.Now()
	e := email(t, "a@partner.example.com")
	pin, _ := signup.NewPIN("123456")
	store.Save(signup.NewPINRecord(e, "123456", now, time.Minute))

	match := func(hash, p string) error {
		if hash != p {
			return errors.New("mismatch")
		}
		return nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := store.Get(e)
			err := signup.Check(rec, pin, now, match)
			if err == nil {
				err = store.Consume(e, rec, now)
			}
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

func TestPINStore_Sweep(t *testing.T) {
	store := memstore.NewPINStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.Save(signup.NewPINRecord(email(t, "old@x.com"), "h", now.Add(-30*time.Minute), 15*time.Minute))
	store.Save(signup.NewPINRecord(email(t, "grace@x.com"), "h", now.Add(-15*time.Minute-30*time.Second), 15*time.Minute))
	store.Save(signup.NewPINRecord(email(t, "fresh@x.com"), "h", now, 15*time.Minute))

	assert.Equal(t, 1, store.Sweep(now, time.Minute))
	assert.Equal(t, 2, store.Len())

	statuses := store.Snapshot(now)
	assert.Len(t, statuses, 2)
}

func TestEmailRegistry(t *testing.T) {
	reg := memstore.NewEmailRegistry()
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	reg.Add(email(t, "b@x.com"), first)
	reg.Add(email(t, "a@x.com"), first)
	reg.Add(email(t, "B@x.com"), first.Add(time.Hour))

	assert.True(t, reg.Contains(email(t, "b@x.com")))
	assert.False(t, reg.Contains(email(t, "c@x.com")))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, reg.List())
}

func TestSweeper_StartStop(t *testing.T) {
	store := memstore.NewPINStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store.Save(signup.NewPINRecord(email(t, "old@x.com"), "h", clk.Now().Add(-time.Hour), 15*time.Minute))

	sweeper := memstore.NewSweeper(store, clk, 5*time.Millisecond, memstore.DefaultSweepGrace)
	sweeper.Start()
	sweeper.Start()

	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
	require.NoError(t, sweeper.Stop(ctx))
}
