package comment

import (
	"strings"
	"time"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// Comment is a review left by a user who finished renting an item.
type Comment struct {
	id        int64
	itemID    int64
	authorID  int64
	text      string
	createdAt time.Time
}

// NewComment creates a new comment.
func NewComment(itemID, authorID int64, text string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	return &Comment{
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: now.UTC(),
	}, nil
}

// Reconstruct rebuilds a Comment from persistence.
func Reconstruct(id, itemID, authorID int64, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		itemID:    itemID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}
}

// Getters.
func (c *Comment) ID() int64            { return c.id }
func (c *Comment) ItemID() int64        { return c.itemID }
func (c *Comment) AuthorID() int64      { return c.authorID }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// AssignID records the identifier generated by the store.
func (c *Comment) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}
