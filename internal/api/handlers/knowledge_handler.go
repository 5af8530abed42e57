package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type KnowledgeHandler struct {
	svc services.KnowledgeService
}

func NewKnowledgeHandler(svc services.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{svc: svc}
}

func (h *KnowledgeHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type knowledgeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *KnowledgeHandler) Create(c *gin.Context) {
	var req knowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "KnowledgeHandler.Create", "invalid request body", err))
		return
	}

	k := &models.KnowledgeItem{Question: req.Question, Answer: req.Answer}
	if err := h.svc.Create(c.Request.Context(), k); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, k)
}

func (h *KnowledgeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req knowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "KnowledgeHandler.Update", "invalid request body", err))
		return
	}

	k := &models.KnowledgeItem{ID: id, Question: req.Question, Answer: req.Answer}
	if err := h.svc.Update(c.Request.Context(), k); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, k)
}

func (h *KnowledgeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "knowledge item deleted"})
}
