package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	commentDomain "github.com/shareit/service-booking/internal/domain/comment"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"not null;index"`
	AuthorID  int64     `gorm:"not null"`
	Text      string    `gorm:"type:varchar(1000);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (CommentModel) TableName() string { return "comments" }

// GormCommentRepository implements CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *commentDomain.Comment) error {
	model := toCommentModel(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	c.AssignID(model.ID)
	return nil
}

// FindByItemID returns all comments for an item.
func (r *GormCommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]*commentDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*commentDomain.Comment, len(models))
	for i, m := range models {
		comments[i] = commentDomain.Reconstruct(m.ID, m.ItemID, m.AuthorID, m.Text, m.CreatedAt)
	}
	return comments, nil
}

func toCommentModel(c *commentDomain.Comment) CommentModel {
	return CommentModel{
		ID:        c.ID(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}
