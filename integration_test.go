//go:build integration

package main_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/service-booking/internal/application"
	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/events"
	"github.com/shareit/service-booking/internal/platform/domain"
)

const day = 24 * time.Hour

func mustPage(t *testing.T, from, size int) domain.PageRequest {
	t.Helper()
	p, err := domain.NewPageRequest(from, size)
	require.NoError(t, err)
	return p
}

// TestBookingLifecycle runs the booking engine against real PostgreSQL and Kafka.
func TestBookingLifecycle(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	t.Run("create publishes event and approve is one-shot", func(t *testing.T) {
		stack.Clock.Set(time.Now().UTC())
		owner := seedUser(t, stack, "owner")
		booker := seedUser(t, stack, "booker")
		item := seedItem(t, stack, owner, "Drill", "Cordless drill")

		now := stack.Clock.Now()
		bookingID := seedBooking(t, stack, booker, item, now.Add(day), now.Add(2*day))

		ce := consumeEvent(t, infra.KafkaBrokers, bookingTopic, events.BookingCreated,
			strconv.FormatInt(bookingID, 10), 15*time.Second)
		var created events.BookingEvent
		require.NoError(t, ce.ParseData(&created))
		assert.Equal(t, bookingID, created.BookingID)
		assert.Equal(t, item, created.ItemID)
		assert.Equal(t, booker, created.BookerID)
		assert.Equal(t, "WAITING", created.Status)

		approved, err := stack.Bookings.ApproveBooking(ctx, bookingID, owner, true)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", approved.Status)
		assert.Equal(t, "Drill", approved.Item.Name)

		_, err = stack.Bookings.ApproveBooking(ctx, bookingID, owner, false)
		require.Error(t, err)
		assert.True(t, domain.IsInvalidState(err))

		consumeEvent(t, infra.KafkaBrokers, bookingTopic, events.BookingApproved,
			strconv.FormatInt(bookingID, 10), 15*time.Second)

		got, err := stack.Bookings.GetBooking(ctx, bookingID, booker)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", got.Status)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("concurrent decisions have a single winner", func(t *testing.T) {
		stack.Clock.Set(time.Now().UTC())
		owner := seedUser(t, stack, "owner")
		booker := seedUser(t, stack, "booker")
		item := seedItem(t, stack, owner, "Tent", "Two person tent")
		now := stack.Clock.Now()
		bookingID := seedBooking(t, stack, booker, item, now.Add(day), now.Add(3*day))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, approve := range []bool{true, false} {
			wg.Add(1)
			go func(i int, approve bool) {
				defer wg.Done()
				_, errs[i] = stack.Bookings.ApproveBooking(ctx, bookingID, owner, approve)
			}(i, approve)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.True(t, domain.IsInvalidState(err), "unexpected error: %v", err)
		}
		assert.Equal(t, 1, succeeded)
	})

	t.Run("booker states classify against the clock", func(t *testing.T) {
		realNow := time.Now().UTC().Truncate(time.Second)
		owner := seedUser(t, stack, "owner")
		booker := seedUser(t, stack, "booker")
		item := seedItem(t, stack, owner, "Kayak", "Sea kayak")

		stack.Clock.Set(realNow.Add(-30 * day))
		past := seedBooking(t, stack, booker, item, realNow.Add(-10*day), realNow.Add(-9*day))
		current := seedBooking(t, stack, booker, item, realNow.Add(-2*day), realNow.Add(2*day))
		future := seedBooking(t, stack, booker, item, realNow.Add(5*day), realNow.Add(6*day))
		_, err := stack.Bookings.ApproveBooking(ctx, current, owner, true)
		require.NoError(t, err)
		_, err = stack.Bookings.ApproveBooking(ctx, future, owner, false)
		require.NoError(t, err)

		stack.Clock.Set(realNow)
		page := mustPage(t, 0, 10)

		tests := []struct {
			state bookingDomain.State
			want  []int64
		}{
			{bookingDomain.StateAll, []int64{future, current, past}},
			{bookingDomain.StatePast, []int64{past}},
			{bookingDomain.StateCurrent, []int64{current}},
			{bookingDomain.StateFuture, []int64{future}},
			{bookingDomain.StateWaiting, []int64{past}},
			{bookingDomain.StateRejected, []int64{future}},
		}
		for _, tt := range tests {
			got, err := stack.Bookings.GetUserBookings(ctx, booker, tt.state, page)
			require.NoError(t, err, tt.state)
			assert.Equal(t, tt.want, bookingIDs(got), tt.state)
		}

		// Page index is from/size: from=1,size=2 is page 0.
		got, err := stack.Bookings.GetUserBookings(ctx, booker, bookingDomain.StateAll, mustPage(t, 1, 2))
		require.NoError(t, err)
		assert.Equal(t, []int64{future, current}, bookingIDs(got))

		got, err = stack.Bookings.GetUserBookings(ctx, booker, bookingDomain.StateAll, mustPage(t, 2, 2))
		require.NoError(t, err)
		assert.Equal(t, []int64{past}, bookingIDs(got))
	})

	t.Run("owner status filter applies after pagination", func(t *testing.T) {
		realNow := time.Now().UTC()
		stack.Clock.Set(realNow)
		owner := seedUser(t, stack, "owner")
		booker := seedUser(t, stack, "booker")
		bike := seedItem(t, stack, owner, "Bike", "City bike")
		ladder := seedItem(t, stack, owner, "Ladder", "Aluminium ladder")

		first := seedBooking(t, stack, booker, bike, realNow.Add(1*day), realNow.Add(2*day))
		second := seedBooking(t, stack, booker, ladder, realNow.Add(3*day), realNow.Add(4*day))
		third := seedBooking(t, stack, booker, bike, realNow.Add(5*day), realNow.Add(6*day))
		_, err := stack.Bookings.ApproveBooking(ctx, third, owner, true)
		require.NoError(t, err)

		all, err := stack.Bookings.GetOwnerBookings(ctx, owner, bookingDomain.StateAll, mustPage(t, 0, 10))
		require.NoError(t, err)
		assert.Equal(t, []int64{third, second, first}, bookingIDs(all))

		// The first page holds third and second; only second is still waiting.
		waiting, err := stack.Bookings.GetOwnerBookings(ctx, owner, bookingDomain.StateWaiting, mustPage(t, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, []int64{second}, bookingIDs(waiting))

		future, err := stack.Bookings.GetOwnerBookings(ctx, owner, bookingDomain.StateFuture, mustPage(t, 0, 10))
		require.NoError(t, err)
		assert.Len(t, future, 3)

		_, err = stack.Bookings.GetBooking(ctx, first, seedUser(t, stack, "stranger"))
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err) || domain.IsForbidden(err))
	})

	t.Run("empty result sets are not errors", func(t *testing.T) {
		stack.Clock.Set(time.Now().UTC())
		user := seedUser(t, stack, "idle")

		got, err := stack.Bookings.GetUserBookings(ctx, user, bookingDomain.StateAll, mustPage(t, 99, 999))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got, err = stack.Bookings.GetOwnerBookings(ctx, user, bookingDomain.StateAll, mustPage(t, 0, 10))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("finished booking unlocks comments and item detail", func(t *testing.T) {
		realNow := time.Now().UTC()
		owner := seedUser(t, stack, "owner")
		booker := seedUser(t, stack, "booker")
		item := seedItem(t, stack, owner, "Projector", "HD projector")

		stack.Clock.Set(realNow.Add(-10 * day))
		done := seedBooking(t, stack, booker, item, realNow.Add(-5*day), realNow.Add(-4*day))
		_, err := stack.Bookings.ApproveBooking(ctx, done, owner, true)
		require.NoError(t, err)
		stack.Clock.Set(realNow)

		comment, err := stack.Comments.AddComment(ctx, item, booker, application.AddCommentRequest{Text: "Bright and sharp"})
		require.NoError(t, err)
		assert.Equal(t, "Bright and sharp", comment.Text)

		_, err = stack.Comments.AddComment(ctx, item, owner, application.AddCommentRequest{Text: "Mine"})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))

		detail, err := stack.Items.GetItem(ctx, item, owner)
		require.NoError(t, err)
		require.NotNil(t, detail.LastBooking)
		assert.Equal(t, done, detail.LastBooking.ID)
		assert.Nil(t, detail.NextBooking)
		require.Len(t, detail.Comments, 1)
	})

	t.Run("admin listing filters by status", func(t *testing.T) {
		approved, total, err := stack.Bookings.ListAllBookings(ctx, bookingDomain.StatusApproved, 1, 100)
		require.NoError(t, err)
		require.NotEmpty(t, approved)
		assert.Equal(t, int64(len(approved)), total)
		for _, b := range approved {
			assert.Equal(t, "APPROVED", b.Status)
		}

		stats, err := stack.Bookings.GetBookingStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, total, stats.ByStatus["APPROVED"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := stack.Users.CreateUser(ctx, application.CreateUserRequest{Name: "A", Email: "dup@example.com"})
		require.NoError(t, err)
		_, err = stack.Users.CreateUser(ctx, application.CreateUserRequest{Name: "B", Email: "dup@example.com"})
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("search matches available items case-insensitively", func(t *testing.T) {
		owner := seedUser(t, stack, "owner")
		hit := seedItem(t, stack, owner, "Snowboard", "Freestyle SNOWBOARD 150cm")
		seedItem(t, stack, owner, "Skis", "Alpine skis")

		found, err := stack.Items.SearchItems(ctx, "snowBOARD", mustPage(t, 0, 10))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, hit, found[0].ID)
	})
}
