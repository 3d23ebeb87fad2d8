package item

import (
	"context"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// ItemRepository defines persistence operations for the item catalog.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// FindByOwnerID lists an owner's items ordered by id.
	FindByOwnerID(ctx context.Context, ownerID int64, page domain.PageRequest) ([]*Item, error)
	FindIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
	// Search matches available items whose name or description contains text, ignoring case.
	Search(ctx context.Context, text string, page domain.PageRequest) ([]*Item, error)
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}
