package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/application"
	"github.com/shareit/service-booking/internal/platform/middleware"
	"github.com/shareit/service-booking/internal/platform/response"
)

// ItemHandler handles HTTP requests for the item catalog and item comments.
type ItemHandler struct {
	items    ItemUseCases
	comments CommentUseCases
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items ItemUseCases, comments CommentUseCases) *ItemHandler {
	return &ItemHandler{items: items, comments: comments}
}

// RegisterRoutes registers item routes.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	{
		items.GET("/search", h.SearchItems)

		owned := items.Group("")
		owned.Use(middleware.RequireUserID())
		owned.POST("", h.CreateItem)
		owned.GET("", h.ListOwnerItems)
		owned.GET("/:id", h.GetItem)
		owned.PATCH("/:id", h.UpdateItem)
		owned.POST("/:id/comment", h.AddComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.items.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateItem handles PATCH /items/:id.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.items.UpdateItem(c.Request.Context(), itemID, userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.items.GetItem(c.Request.Context(), itemID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListOwnerItems handles GET /items?from=&size=.
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	page, ok := parsePageRequest(c)
	if !ok {
		return
	}

	result, err := h.items.ListOwnerItems(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SearchItems handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	page, ok := parsePageRequest(c)
	if !ok {
		return
	}

	result, err := h.items.SearchItems(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AddComment handles POST /items/:id/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	itemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req application.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.comments.AddComment(c.Request.Context(), itemID, userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
