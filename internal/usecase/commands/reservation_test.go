//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"seminar-booking/internal/domain/booking"
	"seminar-booking/internal/pkg/clock"
	"seminar-booking/internal/pkg/gate"
	"seminar-booking/internal/usecase/commands"
	"seminar-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	seminarRepo *fakeSeminarRepo
	bookingRepo *fakeBookingRepo
	gateway     *fakeGateway
	notifier    *fakeNotifier
	clock       *clock.MockClock
	uc          commands.ReservationCommands
}

func newReservationFixture(lockWait time.Duration) *reservationFixture {
	f := &reservationFixture{
		seminarRepo: newFakeSeminarRepo(),
		bookingRepo: newFakeBookingRepo(),
		gateway:     newFakeGateway(),
		notifier:    newFakeNotifier(),
		clock:       clock.NewMockClock(time.Now()),
	}
	f.uc = commands.NewReservationUseCase(
		f.seminarRepo, f.bookingRepo, f.gateway, f.notifier, gate.New(), f.clock, lockWait)
	return f
}

func testAttendee(t *testing.T) booking.Attendee {
	t.Helper()
	attendee, err := builder.NewBookingBuilder().BuildAttendee()
	require.NoError(t, err)
	return attendee
}

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("予約成功でPENDINGの予約と決済リンクが返る", func(t *testing.T) {
		f := newReservationFixture(time.Second)
		sem, err := builder.NewSeminarBuilder().WithCapacity(5).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		result, err := f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.NotEqual(t, uuid.Nil, result.BookingID)
		assert.NotEmpty(t, result.Token)
		assert.NotEmpty(t, result.PaymentLink)

		stored, err := f.bookingRepo.FindByID(ctx, result.BookingID)
		require.NoError(t, err)
		assert.True(t, stored.IsPending())
		require.NotNil(t, stored.SquareOrderID())

		updated, err := f.seminarRepo.FindByID(ctx, sem.ID())
		require.NoError(t, err)
		assert.Equal(t, int32(1), updated.BookedCount())

		mails := f.notifier.sentMails()
		require.Len(t, mails, 1)
		assert.Equal(t, "link", mails[0].kind)
	})

	t.Run("存在しないセミナーはNotFound", func(t *testing.T) {
		f := newReservationFixture(time.Second)

		_, err := f.uc.Reserve(ctx, uuid.New(), testAttendee(t))
		assert.ErrorIs(t, err, commands.ErrSeminarNotFound)
		assert.Zero(t, f.bookingRepo.count())
	})

	t.Run("終了済みセミナーは受け付けない", func(t *testing.T) {
		f := newReservationFixture(time.Second)
		sem, err := builder.NewSeminarBuilder().WithCapacity(5).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		f.clock.Set(sem.EndAt().Add(time.Minute))

		_, err = f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
		assert.ErrorIs(t, err, commands.ErrSeminarEnded)
		assert.Zero(t, f.bookingRepo.count())
		assert.Zero(t, f.gateway.calls())
	})

	t.Run("満席なら書き込みもゲートウェイ呼び出しもしない", func(t *testing.T) {
		f := newReservationFixture(time.Second)
		sem, err := builder.NewSeminarBuilder().
			WithCapacity(2).
			WithBookedCount(2).
			BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		_, err = f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
		assert.ErrorIs(t, err, commands.ErrSeminarFull)

		assert.Zero(t, f.bookingRepo.count())
		assert.Zero(t, f.gateway.calls())
		assert.Empty(t, f.notifier.sentMails())

		unchanged, err := f.seminarRepo.FindByID(ctx, sem.ID())
		require.NoError(t, err)
		assert.Equal(t, int32(2), unchanged.BookedCount())
	})

	t.Run("決済リンク作成失敗でも予約行とカウントは残る", func(t *testing.T) {
		f := newReservationFixture(time.Second)
		f.gateway.linkErr = errors.New("square is down")
		sem, err := builder.NewSeminarBuilder().WithCapacity(5).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		_, err = f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
		assert.ErrorIs(t, err, commands.ErrPaymentGatewayFailed)

		// 席は確保済みのまま（管理者がリンク再送で回復する）
		assert.Equal(t, 1, f.bookingRepo.count())
		updated, err := f.seminarRepo.FindByID(ctx, sem.ID())
		require.NoError(t, err)
		assert.Equal(t, int32(1), updated.BookedCount())
		assert.Empty(t, f.notifier.sentMails())
	})

	t.Run("メール失敗は予約を失敗させない", func(t *testing.T) {
		f := newReservationFixture(time.Second)
		f.notifier.sendErr = errors.New("smtp unreachable")
		sem, err := builder.NewSeminarBuilder().WithCapacity(5).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		result, err := f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
		require.NoError(t, err)
		assert.NotEmpty(t, result.PaymentLink)
	})

	t.Run("ゲート待ちが上限を超えるとBusy", func(t *testing.T) {
		seminarRepo := newFakeSeminarRepo()
		bookingRepo := newFakeBookingRepo()
		gateway := newFakeGateway()
		notifier := newFakeNotifier()
		g := gate.New()
		uc := commands.NewReservationUseCase(seminarRepo, bookingRepo, gateway, notifier, g,
			clock.NewMockClock(time.Now()), 30*time.Millisecond)

		// ゲートを占有したまま予約を試みる
		require.NoError(t, g.Acquire(ctx, time.Second))
		defer g.Release()

		_, err := uc.Reserve(ctx, uuid.New(), testAttendee(t))
		assert.ErrorIs(t, err, commands.ErrReservationBusy)
	})

	t.Run("同時予約は定員を超えない", func(t *testing.T) {
		f := newReservationFixture(5 * time.Second)
		const capacity = 3
		const attempts = 10

		sem, err := builder.NewSeminarBuilder().WithCapacity(capacity).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		var wg sync.WaitGroup
		errsCh := make(chan error, attempts)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
				errsCh <- err
			}()
		}
		wg.Wait()
		close(errsCh)

		var succeeded, full int
		for err := range errsCh {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, commands.ErrSeminarFull):
				full++
			default:
				t.Fatalf("想定外のエラー: %v", err)
			}
		}

		assert.Equal(t, capacity, succeeded)
		assert.Equal(t, attempts-capacity, full)
		assert.Equal(t, capacity, f.bookingRepo.count())

		final, err := f.seminarRepo.FindByID(ctx, sem.ID())
		require.NoError(t, err)
		assert.Equal(t, int32(capacity), final.BookedCount())
		assert.True(t, final.IsFull())
	})

	t.Run("定員1の競争は片方だけ勝つ", func(t *testing.T) {
		f := newReservationFixture(5 * time.Second)
		sem, err := builder.NewSeminarBuilder().WithCapacity(1).BuildReconstructed()
		require.NoError(t, err)
		f.seminarRepo.put(sem)

		results := make(chan error, 2)
		for range 2 {
			go func() {
				_, err := f.uc.Reserve(ctx, sem.ID(), testAttendee(t))
				results <- err
			}()
		}

		first, second := <-results, <-results
		if first == nil {
			assert.ErrorIs(t, second, commands.ErrSeminarFull)
		} else {
			assert.ErrorIs(t, first, commands.ErrSeminarFull)
			assert.NoError(t, second)
		}
		assert.Equal(t, 1, f.bookingRepo.count())
	})
}
