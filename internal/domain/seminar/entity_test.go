//go:build unit

package seminar_test

import (
	"testing"
	"time"

	"seminar-booking/internal/domain/seminar"
	"seminar-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SeminarBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSeminarBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestSeminar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSeminarBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, int32(0), actual.BookedCount())
		assert.Equal(t, int32(10), actual.Remaining())
		assert.False(t, actual.IsFull())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.SeminarBuilder) { b.WithTitle("") },
				errIs:  seminar.ErrInvalidTitle,
			},
			{
				name:   "non-empty title",
				mutate: func(b *builder.SeminarBuilder) { b.WithTitle("a") },
			},
		})
	})

	t.Run("schedule validation", func(t *testing.T) {
		now := time.Now()
		runCases(t, []testCase{
			{
				name:   "start equals end",
				mutate: func(b *builder.SeminarBuilder) { b.WithSchedule(now, now) },
				errIs:  seminar.ErrInvalidSchedule,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.SeminarBuilder) { b.WithSchedule(now.Add(time.Hour), now) },
				errIs:  seminar.ErrInvalidSchedule,
			},
			{
				name:   "start before end",
				mutate: func(b *builder.SeminarBuilder) { b.WithSchedule(now, now.Add(time.Minute)) },
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative capacity",
				mutate: func(b *builder.SeminarBuilder) { b.WithCapacity(-1) },
				errIs:  seminar.ErrInvalidCapacity,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.SeminarBuilder) { b.WithCapacity(0) },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative price",
				mutate: func(b *builder.SeminarBuilder) { b.WithPriceJPY(-1) },
				errIs:  seminar.ErrNegativePrice,
			},
			{
				name:   "free seminar",
				mutate: func(b *builder.SeminarBuilder) { b.WithPriceJPY(0) },
			},
		})
	})

	t.Run("remaining and fullness", func(t *testing.T) {
		sem, err := builder.NewSeminarBuilder().
			WithCapacity(3).
			WithBookedCount(2).
			BuildReconstructed()
		require.NoError(t, err)

		assert.Equal(t, int32(1), sem.Remaining())
		assert.False(t, sem.IsFull())

		full, err := builder.NewSeminarBuilder().
			WithCapacity(3).
			WithBookedCount(3).
			BuildReconstructed()
		require.NoError(t, err)

		assert.Equal(t, int32(0), full.Remaining())
		assert.True(t, full.IsFull())
	})

	t.Run("reconstruct rejects overbooked rows", func(t *testing.T) {
		_, err := builder.NewSeminarBuilder().
			WithCapacity(3).
			WithBookedCount(4).
			BuildReconstructed()
		assert.ErrorIs(t, err, seminar.ErrOverbooked)
	})

	t.Run("HasEnded", func(t *testing.T) {
		sem, err := builder.NewSeminarBuilder().BuildReconstructed()
		require.NoError(t, err)

		assert.False(t, sem.HasEnded(sem.EndAt().Add(-time.Minute)))
		assert.False(t, sem.HasEnded(sem.EndAt()))
		assert.True(t, sem.HasEnded(sem.EndAt().Add(time.Minute)))
	})
}
