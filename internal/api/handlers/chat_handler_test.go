package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/providers/llm"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type fakeChatService struct {
	reply       string
	sessionID   string
	err         error
	lastMessage string
	lastHistory []llm.Turn
	lastSession string
}

func (f *fakeChatService) Send(ctx context.Context, clientIP, message string, history []llm.Turn, sessionID string) (*services.ChatReply, error) {
	f.lastMessage = message
	f.lastHistory = history
	f.lastSession = sessionID
	if f.err != nil {
		return nil, f.err
	}
	return &services.ChatReply{Reply: f.reply, SessionID: f.sessionID}, nil
}

func (f *fakeChatService) ListSessions(ctx context.Context, limit int) ([]models.ChatSession, error) {
	return nil, nil
}

func (f *fakeChatService) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	return nil, utils.E(utils.CodeNotFound, "ChatService.GetSession", "session not found", nil)
}

func (f *fakeChatService) DeleteSession(ctx context.Context, sessionID string) error { return nil }

func chatRouter(svc services.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc)
	r.POST("/chat", h.Send)
	return r
}

func TestChatSendMapsWireHistory(t *testing.T) {
	svc := &fakeChatService{reply: "Salam !", sessionID: "42"}
	r := chatRouter(svc)

	body := `{
		"message": "Et ensuite ?",
		"session_id": "42",
		"history": [
			{"role": "user", "parts": [{"text": "Bonjour"}]},
			{"role": "model", "parts": [{"text": "Salam !"}]}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if svc.lastMessage != "Et ensuite ?" || svc.lastSession != "42" {
		t.Errorf("service got message=%q session=%q", svc.lastMessage, svc.lastSession)
	}
	if len(svc.lastHistory) != 2 {
		t.Fatalf("history has %d turns, want 2", len(svc.lastHistory))
	}
	if svc.lastHistory[0].Role != "user" || svc.lastHistory[0].Text != "Bonjour" {
		t.Errorf("history[0] = %+v", svc.lastHistory[0])
	}
	if svc.lastHistory[1].Role != "model" || svc.lastHistory[1].Text != "Salam !" {
		t.Errorf("history[1] = %+v", svc.lastHistory[1])
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "Salam !" || resp.SessionID != "42" {
		t.Errorf("response = %+v", resp)
	}
}

func TestChatSendUnavailable(t *testing.T) {
	svc := &fakeChatService{
		err: utils.E(utils.CodeUnavailable, "ChatService.Send", "assistant is unavailable", nil),
	}
	r := chatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"Bonjour"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var apiErr APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if apiErr.Code != utils.CodeUnavailable {
		t.Errorf("code = %q, want UNAVAILABLE", apiErr.Code)
	}
}

func TestChatSendBadBody(t *testing.T) {
	r := chatRouter(&fakeChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
