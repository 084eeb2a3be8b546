//go:build unit

package gate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seminar-booking/internal/pkg/gate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	t.Run("空きゲートは即座に取得できる", func(t *testing.T) {
		g := gate.New()
		err := g.Acquire(context.Background(), 10*time.Millisecond)
		require.NoError(t, err)
		g.Release()
	})

	t.Run("取得済みゲートは待ち上限でタイムアウトする", func(t *testing.T) {
		g := gate.New()
		require.NoError(t, g.Acquire(context.Background(), time.Second))
		defer g.Release()

		start := time.Now()
		err := g.Acquire(context.Background(), 50*time.Millisecond)
		elapsed := time.Since(start)

		assert.ErrorIs(t, err, gate.ErrAcquireTimeout)
		assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	})

	t.Run("解放されれば待機中の取得が通る", func(t *testing.T) {
		g := gate.New()
		require.NoError(t, g.Acquire(context.Background(), time.Second))

		acquired := make(chan error, 1)
		go func() {
			acquired <- g.Acquire(context.Background(), time.Second)
		}()

		time.Sleep(20 * time.Millisecond)
		g.Release()

		select {
		case err := <-acquired:
			require.NoError(t, err)
			g.Release()
		case <-time.After(time.Second):
			t.Fatal("待機中の Acquire が解放後も通らない")
		}
	})

	t.Run("コンテキストキャンセルで待機が打ち切られる", func(t *testing.T) {
		g := gate.New()
		require.NoError(t, g.Acquire(context.Background(), time.Second))
		defer g.Release()

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		err := g.Acquire(ctx, time.Second)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("取得なしの解放は panic する", func(t *testing.T) {
		g := gate.New()
		assert.Panics(t, func() { g.Release() })
	})

	t.Run("同時取得は常に1本だけ通る", func(t *testing.T) {
		g := gate.New()
		const workers = 20

		var inside int32
		results := make(chan error, workers)
		for range workers {
			go func() {
				err := g.Acquire(context.Background(), 2*time.Second)
				if err == nil {
					inside++
					if inside > 1 {
						t.Error("クリティカルセクションに2本以上入った")
					}
					time.Sleep(time.Millisecond)
					inside--
					g.Release()
				}
				results <- err
			}()
		}

		for range workers {
			require.NoError(t, <-results)
		}
	})
}
