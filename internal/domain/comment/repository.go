package comment

import "context"

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// FindByItemID returns an item's comments oldest first.
	FindByItemID(ctx context.Context, itemID int64) ([]*Comment, error)
}
