package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit/service-booking/internal/application/mocks"
	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	itemDomain "github.com/shareit/service-booking/internal/domain/item"
	"github.com/shareit/service-booking/internal/platform/domain"
	"github.com/shareit/service-booking/internal/platform/metrics"
)

var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

type bookingFixture struct {
	repo      *mocks.MockBookingRepository
	users     *mocks.MockUserDirectory
	items     *mocks.MockItemCatalog
	publisher *mocks.MockBookingEventPublisher
	metrics   *metrics.Metrics
	svc       *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		repo:      mocks.NewMockBookingRepository(t),
		users:     mocks.NewMockUserDirectory(t),
		items:     mocks.NewMockItemCatalog(t),
		publisher: mocks.NewMockBookingEventPublisher(t),
		metrics:   metrics.New(prometheus.NewRegistry()),
	}
	f.svc = NewBookingService(f.repo, f.users, f.items, f.publisher, f.metrics, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func testItem(id, ownerID int64, available bool) *itemDomain.Item {
	return itemDomain.Reconstruct(id, ownerID, "Drill", "Cordless drill", available, nil, 1, fixedNow, fixedNow)
}

func testBooking(id, itemID, bookerID int64, start, end time.Time, status bookingDomain.BookingStatus) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(id, itemID, bookerID, start, end, status, 1, fixedNow, fixedNow)
}

func mustPage(t *testing.T, from, size int) domain.PageRequest {
	t.Helper()
	page, err := domain.NewPageRequest(from, size)
	require.NoError(t, err)
	return page
}

// --- CreateBooking ---

func TestCreateBooking_Success(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
	f.items.EXPECT().Exists(mock.Anything, int64(5)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*booking.Booking")).
		RunAndReturn(func(_ context.Context, bk *bookingDomain.Booking) error {
			bk.AssignID(1)
			return nil
		})
	f.publisher.EXPECT().PublishCreated(mock.Anything, mock.AnythingOfType("*booking.Booking")).Return()

	result, err := f.svc.CreateBooking(ctx, 2, CreateBookingRequest{
		ItemID: 5,
		Start:  fixedNow.Add(day),
		End:    fixedNow.Add(3 * day),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, "WAITING", result.Status)
	assert.True(t, result.Start.Before(result.End))
	assert.Equal(t, int64(5), result.Item.ID)
	assert.Equal(t, "Drill", result.Item.Name)
	assert.Equal(t, int64(2), result.Booker.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingTransitions.WithLabelValues("WAITING")))
}

func TestCreateBooking_UnknownBooker(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(9)).Return(false, nil)

	_, err := f.svc.CreateBooking(context.Background(), 9, CreateBookingRequest{
		ItemID: 5, Start: fixedNow.Add(day), End: fixedNow.Add(2 * day),
	})

	assert.True(t, domain.IsNotFound(err))
}

func TestCreateBooking_UnknownItem(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
	f.items.EXPECT().Exists(mock.Anything, int64(42)).Return(false, nil)

	_, err := f.svc.CreateBooking(context.Background(), 2, CreateBookingRequest{
		ItemID: 42, Start: fixedNow.Add(day), End: fixedNow.Add(2 * day),
	})

	assert.True(t, domain.IsNotFound(err))
}

func TestCreateBooking_UnavailableItem(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
	f.items.EXPECT().Exists(mock.Anything, int64(7)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(7)).Return(testItem(7, 1, false), nil)

	_, err := f.svc.CreateBooking(context.Background(), 2, CreateBookingRequest{
		ItemID: 7, Start: fixedNow.Add(day), End: fixedNow.Add(2 * day),
	})

	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, bookingDomain.ReasonNotAvailable, domain.ReasonOf(err))
}

func TestCreateBooking_OwnerBookingOwnItem(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.items.EXPECT().Exists(mock.Anything, int64(5)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)

	_, err := f.svc.CreateBooking(context.Background(), 1, CreateBookingRequest{
		ItemID: 5, Start: fixedNow.Add(day), End: fixedNow.Add(2 * day),
	})

	assert.True(t, domain.IsForbidden(err))
	assert.Equal(t, bookingDomain.ReasonOwnItem, domain.ReasonOf(err))
}

func TestCreateBooking_InvalidWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"start in past", fixedNow.Add(-time.Hour), fixedNow.Add(day)},
		{"start equals now", fixedNow, fixedNow.Add(day)},
		{"end before start", fixedNow.Add(2 * day), fixedNow.Add(day)},
		{"end equals start", fixedNow.Add(day), fixedNow.Add(day)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
			f.items.EXPECT().Exists(mock.Anything, int64(5)).Return(true, nil)
			f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)

			_, err := f.svc.CreateBooking(context.Background(), 2, CreateBookingRequest{
				ItemID: 5, Start: tt.start, End: tt.end,
			})

			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestCreateBooking_SaveFailure(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
	f.items.EXPECT().Exists(mock.Anything, int64(5)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := f.svc.CreateBooking(context.Background(), 2, CreateBookingRequest{
		ItemID: 5, Start: fixedNow.Add(day), End: fixedNow.Add(2 * day),
	})

	require.Error(t, err)
	assert.Equal(t, domain.ErrorKind(""), domain.KindOf(err))
}

// --- ApproveBooking ---

func TestApproveBooking_CreateThenApproveScenario(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	start, end := fixedNow.Add(day), fixedNow.Add(3*day)

	f.users.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)

	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(testBooking(1, 5, 2, start, end, bookingDomain.StatusWaiting), nil).Once()
	f.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
	f.publisher.EXPECT().PublishDecided(mock.Anything, mock.Anything).Return().Once()

	approved, err := f.svc.ApproveBooking(ctx, 1, 1, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.Status)
	assert.Equal(t, int64(2), approved.Version)

	// The booker may not decide.
	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(testBooking(1, 5, 2, start, end, bookingDomain.StatusApproved), nil).Once()
	_, err = f.svc.ApproveBooking(ctx, 1, 2, true)
	assert.True(t, domain.IsForbidden(err))
	assert.Equal(t, bookingDomain.ReasonNotOwner, domain.ReasonOf(err))

	// Re-deciding is rejected, not a no-op.
	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(testBooking(1, 5, 2, start, end, bookingDomain.StatusApproved), nil).Once()
	_, err = f.svc.ApproveBooking(ctx, 1, 1, false)
	assert.True(t, domain.IsInvalidState(err))
	assert.Equal(t, bookingDomain.ReasonStatusDecided, domain.ReasonOf(err))
}

func TestApproveBooking_Reject(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.repo.EXPECT().FindByID(mock.Anything, int64(3)).
		Return(testBooking(3, 5, 2, fixedNow.Add(day), fixedNow.Add(2*day), bookingDomain.StatusWaiting), nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishDecided(mock.Anything, mock.Anything).Return()

	result, err := f.svc.ApproveBooking(context.Background(), 3, 1, false)

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", result.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingTransitions.WithLabelValues("REJECTED")))
}

func TestApproveBooking_UnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(8)).Return(false, nil)

	_, err := f.svc.ApproveBooking(context.Background(), 1, 8, true)
	assert.True(t, domain.IsNotFound(err))
}

func TestApproveBooking_UnknownBooking(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.repo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, domain.NewNotFoundError("Booking", "404"))

	_, err := f.svc.ApproveBooking(context.Background(), 404, 1, true)
	assert.True(t, domain.IsNotFound(err))
}

func TestApproveBooking_ConcurrentLoserSeesDecidedStatus(t *testing.T) {
	f := newBookingFixture(t)
	start, end := fixedNow.Add(day), fixedNow.Add(2*day)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(testBooking(1, 5, 2, start, end, bookingDomain.StatusWaiting), nil).Once()
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).
		Return(domain.NewConflictError("booking was modified by another transaction")).Once()
	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(testBooking(1, 5, 2, start, end, bookingDomain.StatusApproved), nil).Once()

	_, err := f.svc.ApproveBooking(context.Background(), 1, 1, false)

	assert.True(t, domain.IsInvalidState(err))
}

func TestApproveBooking_PersistentConflict(t *testing.T) {
	f := newBookingFixture(t)
	start, end := fixedNow.Add(day), fixedNow.Add(2*day)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (*bookingDomain.Booking, error) {
			return testBooking(1, 5, 2, start, end, bookingDomain.StatusWaiting), nil
		}).Twice()
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).
		Return(domain.NewConflictError("booking was modified by another transaction")).Twice()

	_, err := f.svc.ApproveBooking(context.Background(), 1, 1, true)

	assert.True(t, domain.IsConflict(err))
}

// --- GetBooking ---

func TestGetBooking_Access(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		allowed bool
	}{
		{"booker", 2, true},
		{"owner", 1, true},
		{"stranger", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			f.users.EXPECT().Exists(mock.Anything, tt.actorID).Return(true, nil)
			f.repo.EXPECT().FindByID(mock.Anything, int64(1)).
				Return(testBooking(1, 5, 2, fixedNow.Add(day), fixedNow.Add(2*day), bookingDomain.StatusWaiting), nil)
			f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)

			result, err := f.svc.GetBooking(context.Background(), 1, tt.actorID)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, int64(1), result.ID)
				return
			}
			assert.True(t, domain.IsForbidden(err))
			assert.Equal(t, bookingDomain.ReasonNoAccess, domain.ReasonOf(err))
		})
	}
}

func TestGetBooking_UnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(3)).Return(false, nil)

	_, err := f.svc.GetBooking(context.Background(), 1, 3)
	assert.True(t, domain.IsNotFound(err))
}

// --- GetUserBookings ---

func TestGetUserBookings_DispatchesByState(t *testing.T) {
	past := testBooking(1, 5, 2, fixedNow.Add(-3*day), fixedNow.Add(-2*day), bookingDomain.StatusApproved)
	current := testBooking(2, 5, 2, fixedNow.Add(-day), fixedNow.Add(day), bookingDomain.StatusApproved)
	future := testBooking(3, 5, 2, fixedNow.Add(day), fixedNow.Add(2*day), bookingDomain.StatusWaiting)
	rejected := testBooking(4, 5, 2, fixedNow.Add(3*day), fixedNow.Add(4*day), bookingDomain.StatusRejected)

	tests := []struct {
		state  bookingDomain.State
		expect func(f *bookingFixture, page domain.PageRequest)
		ids    []int64
	}{
		{bookingDomain.StateAll, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindByBooker(mock.Anything, int64(2), page).
				Return([]*bookingDomain.Booking{future, current, past}, nil)
		}, []int64{3, 2, 1}},
		{bookingDomain.StatePast, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindPastByBooker(mock.Anything, int64(2), fixedNow, page).
				Return([]*bookingDomain.Booking{past}, nil)
		}, []int64{1}},
		{bookingDomain.StateCurrent, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindCurrentByBooker(mock.Anything, int64(2), fixedNow, page).
				Return([]*bookingDomain.Booking{current}, nil)
		}, []int64{2}},
		{bookingDomain.StateFuture, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindFutureByBooker(mock.Anything, int64(2), fixedNow, page).
				Return([]*bookingDomain.Booking{future}, nil)
		}, []int64{3}},
		{bookingDomain.StateWaiting, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindByBookerAndStatus(mock.Anything, int64(2), bookingDomain.StatusWaiting, page).
				Return([]*bookingDomain.Booking{future}, nil)
		}, []int64{3}},
		{bookingDomain.StateRejected, func(f *bookingFixture, page domain.PageRequest) {
			f.repo.EXPECT().FindByBookerAndStatus(mock.Anything, int64(2), bookingDomain.StatusRejected, page).
				Return([]*bookingDomain.Booking{rejected}, nil)
		}, []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			f := newBookingFixture(t)
			page := mustPage(t, 0, 10)

			f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
			f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil).Once()
			tt.expect(f, page)

			result, err := f.svc.GetUserBookings(context.Background(), 2, tt.state, page)

			require.NoError(t, err)
			ids := make([]int64, len(result))
			for i, b := range result {
				ids[i] = b.ID
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.BookingQueries.WithLabelValues("booker", tt.state.String())))
		})
	}
}

func TestGetUserBookings_UnknownUser(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(false, nil)

	_, err := f.svc.GetUserBookings(context.Background(), 2, bookingDomain.StateAll, mustPage(t, 0, 10))
	assert.True(t, domain.IsNotFound(err))
}

func TestGetUserBookings_PageBeyondData(t *testing.T) {
	f := newBookingFixture(t)
	page := mustPage(t, 99, 999)

	f.users.EXPECT().Exists(mock.Anything, int64(2)).Return(true, nil)
	f.repo.EXPECT().FindByBooker(mock.Anything, int64(2), page).Return([]*bookingDomain.Booking{}, nil)

	result, err := f.svc.GetUserBookings(context.Background(), 2, bookingDomain.StateAll, page)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0, page.Offset())
}

// --- GetOwnerBookings ---

func TestGetOwnerBookings_NoItemsShortCircuits(t *testing.T) {
	states := []bookingDomain.State{
		bookingDomain.StateAll, bookingDomain.StatePast, bookingDomain.StateCurrent,
		bookingDomain.StateFuture, bookingDomain.StateWaiting, bookingDomain.StateRejected,
	}
	for _, state := range states {
		t.Run(state.String(), func(t *testing.T) {
			f := newBookingFixture(t)
			f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
			f.items.EXPECT().ListOwnedItemIDs(mock.Anything, int64(1)).Return([]int64{}, nil)

			result, err := f.svc.GetOwnerBookings(context.Background(), 1, state, mustPage(t, 0, 10))

			require.NoError(t, err)
			assert.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestGetOwnerBookings_TemporalStates(t *testing.T) {
	past := testBooking(1, 5, 2, fixedNow.Add(-3*day), fixedNow.Add(-2*day), bookingDomain.StatusApproved)
	page := domain.PageRequest{From: 0, Size: 10}

	tests := []struct {
		state  bookingDomain.State
		expect func(f *bookingFixture)
	}{
		{bookingDomain.StateAll, func(f *bookingFixture) {
			f.repo.EXPECT().FindByOwner(mock.Anything, int64(1), page).Return([]*bookingDomain.Booking{past}, nil)
		}},
		{bookingDomain.StatePast, func(f *bookingFixture) {
			f.repo.EXPECT().FindPastByOwner(mock.Anything, int64(1), fixedNow, page).Return([]*bookingDomain.Booking{past}, nil)
		}},
		{bookingDomain.StateCurrent, func(f *bookingFixture) {
			f.repo.EXPECT().FindCurrentByOwner(mock.Anything, int64(1), fixedNow, page).Return([]*bookingDomain.Booking{past}, nil)
		}},
		{bookingDomain.StateFuture, func(f *bookingFixture) {
			f.repo.EXPECT().FindFutureByOwner(mock.Anything, int64(1), fixedNow, page).Return([]*bookingDomain.Booking{past}, nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			f := newBookingFixture(t)
			f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
			f.items.EXPECT().ListOwnedItemIDs(mock.Anything, int64(1)).Return([]int64{5}, nil)
			f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
			tt.expect(f)

			result, err := f.svc.GetOwnerBookings(context.Background(), 1, tt.state, page)

			require.NoError(t, err)
			assert.Len(t, result, 1)
		})
	}
}

func TestGetOwnerBookings_StatusFilteredAfterPagination(t *testing.T) {
	page := mustPage(t, 0, 3)
	pageRows := []*bookingDomain.Booking{
		testBooking(6, 5, 2, fixedNow.Add(6*day), fixedNow.Add(7*day), bookingDomain.StatusApproved),
		testBooking(5, 5, 3, fixedNow.Add(5*day), fixedNow.Add(6*day), bookingDomain.StatusWaiting),
		testBooking(4, 5, 2, fixedNow.Add(4*day), fixedNow.Add(5*day), bookingDomain.StatusApproved),
	}

	f := newBookingFixture(t)
	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.items.EXPECT().ListOwnedItemIDs(mock.Anything, int64(1)).Return([]int64{5}, nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)
	f.repo.EXPECT().FindByOwner(mock.Anything, int64(1), page).Return(pageRows, nil)

	result, err := f.svc.GetOwnerBookings(context.Background(), 1, bookingDomain.StateWaiting, page)

	require.NoError(t, err)
	require.Len(t, result, 1, "page holds fewer than size rows after filtering")
	assert.Equal(t, int64(5), result[0].ID)
}

func TestGetOwnerBookings_RejectedFilter(t *testing.T) {
	page := mustPage(t, 0, 10)

	f := newBookingFixture(t)
	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(true, nil)
	f.items.EXPECT().ListOwnedItemIDs(mock.Anything, int64(1)).Return([]int64{5}, nil)
	f.repo.EXPECT().FindByOwner(mock.Anything, int64(1), page).Return([]*bookingDomain.Booking{
		testBooking(2, 5, 2, fixedNow.Add(2*day), fixedNow.Add(3*day), bookingDomain.StatusWaiting),
	}, nil)

	result, err := f.svc.GetOwnerBookings(context.Background(), 1, bookingDomain.StateRejected, page)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestGetOwnerBookings_UnknownOwner(t *testing.T) {
	f := newBookingFixture(t)

	f.users.EXPECT().Exists(mock.Anything, int64(1)).Return(false, nil)

	_, err := f.svc.GetOwnerBookings(context.Background(), 1, bookingDomain.StateAll, mustPage(t, 0, 10))
	assert.True(t, domain.IsNotFound(err))
}

// --- Admin ---

func TestGetBookingStats(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().CountByStatus(mock.Anything).Return(map[string]int64{
		"WAITING":  2,
		"APPROVED": 3,
	}, nil)

	stats, err := f.svc.GetBookingStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.ByStatus["APPROVED"])
}

func TestListAllBookings(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().ListAll(mock.Anything, bookingDomain.StatusWaiting, 1, 20).Return([]*bookingDomain.Booking{
		testBooking(1, 5, 2, fixedNow.Add(day), fixedNow.Add(2*day), bookingDomain.StatusWaiting),
	}, int64(1), nil)
	f.items.EXPECT().FindItem(mock.Anything, int64(5)).Return(testItem(5, 1, true), nil)

	bookings, total, err := f.svc.ListAllBookings(context.Background(), bookingDomain.StatusWaiting, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Drill", bookings[0].Item.Name)
}
