package application

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	commentDomain "github.com/shareit/service-booking/internal/domain/comment"
	itemDomain "github.com/shareit/service-booking/internal/domain/item"
	userDomain "github.com/shareit/service-booking/internal/domain/user"
	"github.com/shareit/service-booking/internal/platform/domain"
)

// ReasonNoFinishedBooking tags comments from users who never finished renting the item.
const ReasonNoFinishedBooking = "no_finished_booking"

// AddCommentRequest holds the comment text.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentDTO is the API response representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// CommentService handles item comment use cases.
type CommentService struct {
	repo     commentDomain.CommentRepository
	users    userDomain.UserRepository
	items    itemDomain.ItemRepository
	bookings bookingDomain.BookingRepository
	now      Clock
	logger   *zap.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	repo commentDomain.CommentRepository,
	users userDomain.UserRepository,
	items itemDomain.ItemRepository,
	bookings bookingDomain.BookingRepository,
	logger *zap.Logger,
) *CommentService {
	return &CommentService{
		repo:     repo,
		users:    users,
		items:    items,
		bookings: bookings,
		now:      systemClock,
		logger:   logger,
	}
}

// WithClock replaces the time source used for eligibility and timestamps.
func (s *CommentService) WithClock(now Clock) *CommentService {
	s.now = now
	return s
}

// AddComment posts a comment. The author must have an approved booking of the item that has ended.
func (s *CommentService) AddComment(ctx context.Context, itemID, authorID int64, req AddCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.items.Exists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFoundError("Item", strconv.FormatInt(itemID, 10))
	}

	now := s.now()
	if _, err := s.bookings.FindFinishedByBookerAndItem(ctx, authorID, itemID, now); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewValidationError("user has not finished renting this item").
				WithReason(ReasonNoFinishedBooking)
		}
		return nil, err
	}

	c, err := commentDomain.NewComment(itemID, authorID, req.Text, now)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		zap.Int64("item_id", itemID),
		zap.Int64("author_id", authorID),
	)

	return toCommentDTO(c, author.Name()), nil
}

func toCommentDTO(c *commentDomain.Comment, authorName string) *CommentDTO {
	return &CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: authorName,
		Created:    c.CreatedAt(),
	}
}
