package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type ReviewHandler struct {
	svc services.ReviewService
}

func NewReviewHandler(svc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ListPublished backs the public testimonial section.
func (h *ReviewHandler) ListPublished(c *gin.Context) {
	rows, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListAll backs the admin moderation view and includes unpublished entries.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	rows, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type createReviewRequest struct {
	Author     string `json:"author"`
	GuestEmail string `json:"guest_email"`
	Role       string `json:"role"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ReviewHandler.Create", "invalid request body", err))
		return
	}

	rv := &models.Review{
		Author:     req.Author,
		GuestEmail: req.GuestEmail,
		Role:       req.Role,
		Content:    req.Content,
		Rating:     req.Rating,
	}
	if err := h.svc.Create(c.Request.Context(), rv); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) TogglePublish(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	rv, err := h.svc.TogglePublish(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
