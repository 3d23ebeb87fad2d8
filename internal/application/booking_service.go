package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/domain"
	"github.com/shareit/service-booking/internal/platform/metrics"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required,gt=0"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookingItemDTO is the item summary embedded in a booking.
type BookingItemDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingBookerDTO is the booker summary embedded in a booking.
type BookingBookerDTO struct {
	ID int64 `json:"id"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        int64            `json:"id"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Status    string           `json:"status"`
	Item      BookingItemDTO   `json:"item"`
	Booker    BookingBookerDTO `json:"booker"`
	Version   int64            `json:"version"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	users     UserDirectory
	items     ItemCatalog
	publisher BookingEventPublisher
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	now       Clock
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	users UserDirectory,
	items ItemCatalog,
	publisher BookingEventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		users:     users,
		items:     items,
		publisher: publisher,
		metrics:   m,
		tracer:    otel.Tracer("github.com/shareit/service-booking/internal/application"),
		now:       systemClock,
		logger:    logger,
	}
}

// WithClock replaces the time source used for creation checks and state classification.
func (s *BookingService) WithClock(now Clock) *BookingService {
	s.now = now
	return s
}

// CreateBooking requests a WAITING booking of an item for the given booker.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int64, req CreateBookingRequest) (_ *BookingDTO, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.CreateBooking", trace.WithAttributes(
		attribute.Int64("booker.id", bookerID),
		attribute.Int64("item.id", req.ItemID),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}

	exists, err := s.items.Exists(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check item: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("Item", strconv.FormatInt(req.ItemID, 10))
	}

	it, err := s.items.FindItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.IsAvailable() {
		return nil, domain.NewValidationError("item is not available for booking").
			WithReason(bookingDomain.ReasonNotAvailable)
	}
	if it.IsOwnedBy(bookerID) {
		return nil, domain.NewForbiddenError("owner cannot book own item").
			WithReason(bookingDomain.ReasonOwnItem)
	}

	bk, err := bookingDomain.NewBooking(req.ItemID, bookerID, req.Start, req.End, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.metrics.ObserveTransition(bk.Status().String())
	s.publisher.PublishCreated(ctx, bk)
	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("item_id", bk.ItemID()),
		zap.Int64("booker_id", bookerID),
	)

	result := toBookingDTO(bk, it.Name())
	return &result, nil
}

// ApproveBooking lets the item owner approve or reject a WAITING booking.
//
// The update is guarded by the booking version. A lost race is re-read once so
// the loser observes the decided status instead of a conflict.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID, actorID int64, approved bool) (_ *BookingDTO, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.ApproveBooking", trace.WithAttributes(
		attribute.Int64("booking.id", bookingID),
		attribute.Int64("actor.id", actorID),
		attribute.Bool("approved", approved),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	const maxAttempts = 2
	for attempt := 1; ; attempt++ {
		bk, err := s.repo.FindByID(ctx, bookingID)
		if err != nil {
			return nil, err
		}

		it, err := s.items.FindItem(ctx, bk.ItemID())
		if err != nil {
			return nil, err
		}
		if !it.IsOwnedBy(actorID) {
			return nil, domain.NewForbiddenError("only the item owner can decide a booking").
				WithReason(bookingDomain.ReasonNotOwner)
		}

		if err := bk.Decide(approved); err != nil {
			return nil, err
		}

		bk.IncrementVersion()
		err = s.repo.Update(ctx, bk)
		if domain.IsConflict(err) && attempt < maxAttempts {
			s.logger.Debug("booking decision raced, re-reading", zap.Int64("booking_id", bookingID))
			continue
		}
		if err != nil {
			return nil, err
		}

		s.metrics.ObserveTransition(bk.Status().String())
		s.publisher.PublishDecided(ctx, bk)
		s.logger.Info("booking decided",
			zap.Int64("booking_id", bk.ID()),
			zap.String("status", bk.Status().String()),
			zap.Int64("owner_id", actorID),
		)

		result := toBookingDTO(bk, it.Name())
		return &result, nil
	}
}

// GetBooking returns a booking visible to its booker or the item owner.
func (s *BookingService) GetBooking(ctx context.Context, bookingID, actorID int64) (_ *BookingDTO, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.GetBooking", trace.WithAttributes(
		attribute.Int64("booking.id", bookingID),
		attribute.Int64("actor.id", actorID),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindItem(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !bk.IsBookedBy(actorID) && !it.IsOwnedBy(actorID) {
		return nil, domain.NewForbiddenError("no access to booking").
			WithReason(bookingDomain.ReasonNoAccess)
	}

	result := toBookingDTO(bk, it.Name())
	return &result, nil
}

// GetUserBookings lists the booker's bookings in the given state, newest start first.
func (s *BookingService) GetUserBookings(ctx context.Context, bookerID int64, state bookingDomain.State, page domain.PageRequest) (_ []BookingDTO, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.GetUserBookings", trace.WithAttributes(
		attribute.Int64("booker.id", bookerID),
		attribute.String("state", state.String()),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	s.metrics.ObserveQuery("booker", state.String())

	now := s.now()
	var bookings []*bookingDomain.Booking
	switch state {
	case bookingDomain.StateAll:
		bookings, err = s.repo.FindByBooker(ctx, bookerID, page)
	case bookingDomain.StatePast:
		bookings, err = s.repo.FindPastByBooker(ctx, bookerID, now, page)
	case bookingDomain.StateCurrent:
		bookings, err = s.repo.FindCurrentByBooker(ctx, bookerID, now, page)
	case bookingDomain.StateFuture:
		bookings, err = s.repo.FindFutureByBooker(ctx, bookerID, now, page)
	case bookingDomain.StateWaiting, bookingDomain.StateRejected:
		status, _ := state.StatusFilter()
		bookings, err = s.repo.FindByBookerAndStatus(ctx, bookerID, status, page)
	default:
		return nil, domain.NewValidationError("Unknown state: " + state.String()).
			WithReason(bookingDomain.ReasonUnknownState)
	}
	if err != nil {
		return nil, err
	}

	return s.toBookingDTOs(ctx, bookings)
}

// GetOwnerBookings lists bookings of the owner's items in the given state, newest start first.
//
// WAITING and REJECTED are filtered after the page is fetched, so a page may
// hold fewer than size bookings even when more match.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerID int64, state bookingDomain.State, page domain.PageRequest) (_ []BookingDTO, err error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.GetOwnerBookings", trace.WithAttributes(
		attribute.Int64("owner.id", ownerID),
		attribute.String("state", state.String()),
	))
	defer func() { endSpan(span, err) }()

	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	s.metrics.ObserveQuery("owner", state.String())

	itemIDs, err := s.items.ListOwnedItemIDs(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned items: %w", err)
	}
	if len(itemIDs) == 0 {
		return []BookingDTO{}, nil
	}

	now := s.now()
	var bookings []*bookingDomain.Booking
	switch state {
	case bookingDomain.StateAll:
		bookings, err = s.repo.FindByOwner(ctx, ownerID, page)
	case bookingDomain.StatePast:
		bookings, err = s.repo.FindPastByOwner(ctx, ownerID, now, page)
	case bookingDomain.StateCurrent:
		bookings, err = s.repo.FindCurrentByOwner(ctx, ownerID, now, page)
	case bookingDomain.StateFuture:
		bookings, err = s.repo.FindFutureByOwner(ctx, ownerID, now, page)
	case bookingDomain.StateWaiting, bookingDomain.StateRejected:
		bookings, err = s.repo.FindByOwner(ctx, ownerID, page)
		if err == nil {
			bookings = filterByState(bookings, state, now)
		}
	default:
		return nil, domain.NewValidationError("Unknown state: " + state.String()).
			WithReason(bookingDomain.ReasonUnknownState)
	}
	if err != nil {
		return nil, err
	}

	return s.toBookingDTOs(ctx, bookings)
}

// --- Admin methods ---

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// ListAllBookings pages through every booking, optionally restricted to one status (admin).
func (s *BookingService) ListAllBookings(ctx context.Context, status bookingDomain.BookingStatus, page, limit int) ([]BookingDTO, int64, error) {
	bookings, total, err := s.repo.ListAll(ctx, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	dtos, err := s.toBookingDTOs(ctx, bookings)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings: total,
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

func (s *BookingService) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("User", strconv.FormatInt(userID, 10))
	}
	return nil
}

// toBookingDTOs resolves item names once per item within a single call.
func (s *BookingService) toBookingDTOs(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingDTO, error) {
	names := make(map[int64]string)
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		name, ok := names[bk.ItemID()]
		if !ok {
			it, err := s.items.FindItem(ctx, bk.ItemID())
			if err != nil {
				return nil, err
			}
			name = it.Name()
			names[bk.ItemID()] = name
		}
		dtos[i] = toBookingDTO(bk, name)
	}
	return dtos, nil
}

func filterByState(bookings []*bookingDomain.Booking, state bookingDomain.State, now time.Time) []*bookingDomain.Booking {
	filtered := make([]*bookingDomain.Booking, 0, len(bookings))
	for _, bk := range bookings {
		if state.Matches(bk, now) {
			filtered = append(filtered, bk)
		}
	}
	return filtered
}

func toBookingDTO(bk *bookingDomain.Booking, itemName string) BookingDTO {
	return BookingDTO{
		ID:        bk.ID(),
		Start:     bk.Start(),
		End:       bk.End(),
		Status:    bk.Status().String(),
		Item:      BookingItemDTO{ID: bk.ItemID(), Name: itemName},
		Booker:    BookingBookerDTO{ID: bk.BookerID()},
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
