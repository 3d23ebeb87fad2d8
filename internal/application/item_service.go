package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	commentDomain "github.com/shareit/service-booking/internal/domain/comment"
	itemDomain "github.com/shareit/service-booking/internal/domain/item"
	userDomain "github.com/shareit/service-booking/internal/domain/user"
	"github.com/shareit/service-booking/internal/platform/domain"
)

// ReasonNotItemOwner tags item updates attempted by someone other than the owner.
const ReasonNotItemOwner = "not_item_owner"

// CreateItemRequest is the request DTO for listing an item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

// UpdateItemRequest is the request DTO for a partial item update.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemDTO is the API response representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemBookingDTO is the short booking reference shown on item detail.
type ItemBookingDTO struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ItemDetailDTO is an item with its comments and, for the owner, booking references.
type ItemDetailDTO struct {
	ItemDTO
	LastBooking *ItemBookingDTO `json:"lastBooking"`
	NextBooking *ItemBookingDTO `json:"nextBooking"`
	Comments    []*CommentDTO   `json:"comments"`
}

// ItemService handles item catalog use cases and serves as the booking engine's ItemCatalog.
type ItemService struct {
	repo     itemDomain.ItemRepository
	users    userDomain.UserRepository
	bookings bookingDomain.BookingRepository
	comments commentDomain.CommentRepository
	now      Clock
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	repo itemDomain.ItemRepository,
	users userDomain.UserRepository,
	bookings bookingDomain.BookingRepository,
	comments commentDomain.CommentRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		repo:     repo,
		users:    users,
		bookings: bookings,
		comments: comments,
		now:      systemClock,
		logger:   logger,
	}
}

// WithClock replaces the time source used to pick last and next bookings.
func (s *ItemService) WithClock(now Clock) *ItemService {
	s.now = now
	return s
}

// CreateItem lists a new item for an existing owner.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	available := req.Available != nil && *req.Available
	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, available, req.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		zap.Int64("item_id", it.ID()),
		zap.Int64("owner_id", ownerID),
	)
	return toItemDTO(it), nil
}

// UpdateItem applies a partial update. Only the owner may update an item.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, actorID int64, req UpdateItemRequest) (*ItemDTO, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(actorID) {
		return nil, domain.NewForbiddenError("item does not belong to this user").WithReason(ReasonNotItemOwner)
	}

	it.Update(req.Name, req.Description, req.Available)
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item updated", zap.Int64("item_id", itemID))
	return toItemDTO(it), nil
}

// GetItem returns item detail. Booking references are only shown to the owner.
func (s *ItemService) GetItem(ctx context.Context, itemID, actorID int64) (*ItemDetailDTO, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.toItemDetail(ctx, it, it.IsOwnedBy(actorID))
}

// ListOwnerItems returns the owner's items ordered by id.
func (s *ItemService) ListOwnerItems(ctx context.Context, ownerID int64, page domain.PageRequest) ([]*ItemDetailDTO, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.FindByOwnerID(ctx, ownerID, page)
	if err != nil {
		return nil, err
	}

	dtos := make([]*ItemDetailDTO, len(items))
	for i, it := range items {
		d, err := s.toItemDetail(ctx, it, true)
		if err != nil {
			return nil, err
		}
		dtos[i] = d
	}
	return dtos, nil
}

// SearchItems finds available items by name or description. Blank text matches nothing.
func (s *ItemService) SearchItems(ctx context.Context, text string, page domain.PageRequest) ([]*ItemDTO, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemDTO{}, nil
	}

	items, err := s.repo.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]*ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it)
	}
	return dtos, nil
}

// --- ItemCatalog ---

// Exists reports whether the item is listed.
func (s *ItemService) Exists(ctx context.Context, itemID int64) (bool, error) {
	return s.repo.Exists(ctx, itemID)
}

// FindItem returns the item aggregate.
func (s *ItemService) FindItem(ctx context.Context, itemID int64) (*itemDomain.Item, error) {
	return s.repo.FindByID(ctx, itemID)
}

// ListOwnedItemIDs returns the ids of every item the owner lists.
func (s *ItemService) ListOwnedItemIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	return s.repo.FindIDsByOwner(ctx, ownerID)
}

// --- Helpers ---

func (s *ItemService) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("User", strconv.FormatInt(userID, 10))
	}
	return nil
}

func (s *ItemService) toItemDetail(ctx context.Context, it *itemDomain.Item, withBookings bool) (*ItemDetailDTO, error) {
	detail := &ItemDetailDTO{ItemDTO: *toItemDTO(it)}

	if withBookings {
		now := s.now()
		last, err := s.bookings.FindLastForItem(ctx, it.ID(), now)
		if err != nil {
			return nil, err
		}
		next, err := s.bookings.FindNextForItem(ctx, it.ID(), now)
		if err != nil {
			return nil, err
		}
		detail.LastBooking = toItemBookingDTO(last)
		detail.NextBooking = toItemBookingDTO(next)
	}

	comments, err := s.comments.FindByItemID(ctx, it.ID())
	if err != nil {
		return nil, err
	}
	detail.Comments = make([]*CommentDTO, len(comments))
	for i, c := range comments {
		author, err := s.users.FindByID(ctx, c.AuthorID())
		if err != nil {
			return nil, err
		}
		detail.Comments[i] = toCommentDTO(c, author.Name())
	}
	return detail, nil
}

func toItemDTO(it *itemDomain.Item) *ItemDTO {
	return &ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.IsAvailable(),
		RequestID:   it.RequestID(),
	}
}

func toItemBookingDTO(bk *bookingDomain.Booking) *ItemBookingDTO {
	if bk == nil {
		return nil
	}
	return &ItemBookingDTO{
		ID:       bk.ID(),
		BookerID: bk.BookerID(),
		Start:    bk.Start(),
		End:      bk.End(),
	}
}
