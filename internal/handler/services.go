package handler

import (
	"context"

	"github.com/shareit/service-booking/internal/application"
	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/domain"
)

// BookingUseCases is the booking engine surface exposed over HTTP.
type BookingUseCases interface {
	CreateBooking(ctx context.Context, bookerID int64, req application.CreateBookingRequest) (*application.BookingDTO, error)
	ApproveBooking(ctx context.Context, bookingID, actorID int64, approved bool) (*application.BookingDTO, error)
	GetBooking(ctx context.Context, bookingID, actorID int64) (*application.BookingDTO, error)
	GetUserBookings(ctx context.Context, bookerID int64, state bookingDomain.State, page domain.PageRequest) ([]application.BookingDTO, error)
	GetOwnerBookings(ctx context.Context, ownerID int64, state bookingDomain.State, page domain.PageRequest) ([]application.BookingDTO, error)
}

// AdminUseCases serves the internal admin surface.
type AdminUseCases interface {
	ListAllBookings(ctx context.Context, status bookingDomain.BookingStatus, page, limit int) ([]application.BookingDTO, int64, error)
	GetBookingStats(ctx context.Context) (*application.BookingStatsDTO, error)
}

// UserUseCases serves the user directory.
type UserUseCases interface {
	CreateUser(ctx context.Context, req application.CreateUserRequest) (*application.UserDTO, error)
	UpdateUser(ctx context.Context, userID int64, req application.UpdateUserRequest) (*application.UserDTO, error)
	GetUser(ctx context.Context, userID int64) (*application.UserDTO, error)
	ListUsers(ctx context.Context) ([]*application.UserDTO, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ItemUseCases serves the item catalog.
type ItemUseCases interface {
	CreateItem(ctx context.Context, ownerID int64, req application.CreateItemRequest) (*application.ItemDTO, error)
	UpdateItem(ctx context.Context, itemID, actorID int64, req application.UpdateItemRequest) (*application.ItemDTO, error)
	GetItem(ctx context.Context, itemID, actorID int64) (*application.ItemDetailDTO, error)
	ListOwnerItems(ctx context.Context, ownerID int64, page domain.PageRequest) ([]*application.ItemDetailDTO, error)
	SearchItems(ctx context.Context, text string, page domain.PageRequest) ([]*application.ItemDTO, error)
}

// CommentUseCases serves item comments.
type CommentUseCases interface {
	AddComment(ctx context.Context, itemID, authorID int64, req application.AddCommentRequest) (*application.CommentDTO, error)
}
