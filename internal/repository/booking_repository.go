package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/domain"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"not null;index"`
	BookerID  int64     `gorm:"not null;index"`
	StartDate time.Time `gorm:"type:timestamptz;not null"`
	EndDate   time.Time `gorm:"type:timestamptz;not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// Save persists a new booking and assigns the generated ID.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	bk.AssignID(model.ID)
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	// IncrementVersion was called, so the stored row holds the previous version.
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", bk.ID(), expectedVersion).
		Updates(map[string]interface{}{
			"status":     string(bk.Status()),
			"start_date": bk.Start(),
			"end_date":   bk.End(),
			"version":    bk.Version(),
			"updated_at": bk.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}

	return nil
}

// --- Booker queries ---

func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byBooker(bookerID))
}

func (r *GormBookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byBooker(bookerID), past(now))
}

func (r *GormBookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byBooker(bookerID), current(now))
}

func (r *GormBookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byBooker(bookerID), future(now))
}

func (r *GormBookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status bookingDomain.BookingStatus, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byBooker(bookerID), withStatus(status))
}

// --- Owner queries ---

func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID int64, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byItemOwner(ownerID))
}

func (r *GormBookingRepository) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byItemOwner(ownerID), past(now))
}

func (r *GormBookingRepository) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byItemOwner(ownerID), current(now))
}

func (r *GormBookingRepository) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*bookingDomain.Booking, error) {
	return r.findPage(ctx, page, byItemOwner(ownerID), future(now))
}

// --- Item queries ---

// FindFinishedByBookerAndItem returns the earliest-ending approved booking that is over.
func (r *GormBookingRepository) FindFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Scopes(byBooker(bookerID), withStatus(bookingDomain.StatusApproved), past(now)).
		Where("bookings.item_id = ?", itemID).
		Order("bookings.end_date ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Finished booking of item", strconv.FormatInt(itemID, 10))
		}
		return nil, fmt.Errorf("failed to find finished booking: %w", err)
	}
	return toDomainBooking(&model)
}

// FindLastForItem returns the most recently started approved booking, or nil.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return r.findFirstForItem(ctx, itemID, "bookings.start_date <= ?", now, "bookings.start_date DESC")
}

// FindNextForItem returns the soonest upcoming approved booking, or nil.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return r.findFirstForItem(ctx, itemID, "bookings.start_date > ?", now, "bookings.start_date ASC")
}

func (r *GormBookingRepository) findFirstForItem(ctx context.Context, itemID int64, cond string, now time.Time, order string) (*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Scopes(withStatus(bookingDomain.StatusApproved)).
		Where("bookings.item_id = ?", itemID).
		Where(cond, now).
		Order(order).
		Limit(1).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item booking: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return toDomainBooking(&models[0])
}

// --- Admin ---

// ListAll retrieves bookings newest first, optionally filtered by status (admin).
func (r *GormBookingRepository) ListAll(ctx context.Context, status bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})
	if status != "" {
		query = query.Scopes(withStatus(status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	if err := query.
		Order("bookings.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings, err := toDomainBookings(models)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// CountByStatus returns booking counts grouped by status (admin).
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// --- Query scopes ---

func (r *GormBookingRepository) findPage(ctx context.Context, page domain.PageRequest, scopes ...func(*gorm.DB) *gorm.DB) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Order("bookings.start_date DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	return toDomainBookings(models)
}

func byBooker(bookerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.booker_id = ?", bookerID)
	}
}

func byItemOwner(ownerID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select("bookings.*").
			Joins("JOIN items ON items.id = bookings.item_id").
			Where("items.owner_id = ?", ownerID)
	}
}

func withStatus(status bookingDomain.BookingStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.status = ?", string(status))
	}
}

func past(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.end_date < ?", now)
	}
}

func current(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.start_date <= ? AND bookings.end_date >= ?", now, now)
	}
}

func future(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("bookings.start_date > ?", now)
	}
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		StartDate: bk.Start(),
		EndDate:   bk.End(),
		Status:    string(bk.Status()),
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.ReconstructBooking(
		m.ID,
		m.ItemID,
		m.BookerID,
		m.StartDate.UTC(),
		m.EndDate.UTC(),
		status,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}
