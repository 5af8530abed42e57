package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/providers/llm"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// historyTurn mirrors the widget's wire shape: role "user"|"model" with the
// text wrapped in parts.
type historyTurn struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type chatRequest struct {
	Message   string        `json:"message"`
	History   []historyTurn `json:"history"`
	SessionID string        `json:"session_id"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Send", "invalid request body", err))
		return
	}

	history := make([]llm.Turn, 0, len(req.History))
	for _, t := range req.History {
		var text string
		if len(t.Parts) > 0 {
			text = t.Parts[0].Text
		}
		history = append(history, llm.Turn{Role: t.Role, Text: text})
	}

	out, err := h.svc.Send(c.Request.Context(), c.ClientIP(), req.Message, history, req.SessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse{Reply: out.Reply, SessionID: out.SessionID})
}

// AISessionHandler exposes recorded conversations to the admin dashboard.
type AISessionHandler struct {
	svc services.ChatService
}

func NewAISessionHandler(svc services.ChatService) *AISessionHandler {
	return &AISessionHandler{svc: svc}
}

func (h *AISessionHandler) List(c *gin.Context) {
	rows, err := h.svc.ListSessions(c.Request.Context(), 100)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AISessionHandler) Get(c *gin.Context) {
	sess, err := h.svc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *AISessionHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}
