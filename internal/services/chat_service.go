package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/providers/llm"
	mongorepo "github.com/oubasys/portfolio/internal/repositories/mongo"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
	"github.com/sirupsen/logrus"
)

// ChatReply is the outcome of one assistant turn.
type ChatReply struct {
	Reply     string
	SessionID string
}

type ChatService interface {
	// Send runs one conversation turn: matches the visitor message against
	// the knowledge base, asks the model for a reply, and records both turns
	// under the session (creating one when sessionID is empty or unknown).
	Send(ctx context.Context, clientIP, message string, history []llm.Turn, sessionID string) (*ChatReply, error)

	ListSessions(ctx context.Context, limit int) ([]models.ChatSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type chatService struct {
	sessions  mongorepo.ChatSessionRepository
	knowledge pgrepo.KnowledgeRepository
	settings  pgrepo.SettingRepository
	provider  llm.Provider
	log       *logrus.Logger
}

func NewChatService(
	sessions mongorepo.ChatSessionRepository,
	knowledge pgrepo.KnowledgeRepository,
	settings pgrepo.SettingRepository,
	provider llm.Provider,
	log *logrus.Logger,
) ChatService {
	return &chatService{
		sessions:  sessions,
		knowledge: knowledge,
		settings:  settings,
		provider:  provider,
		log:       log,
	}
}

func (s *chatService) Send(ctx context.Context, clientIP, message string, history []llm.Turn, sessionID string) (*ChatReply, error) {
	const op = "ChatService.Send"

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}

	items, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load knowledge base", err)
	}

	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load assistant settings", err)
	}

	matched := matchKnowledge(items, message)
	system := buildSystemPrompt(settings, items)

	sess, err := s.ensureSession(ctx, sessionID, clientIP)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to open chat session", err)
	}

	now := time.Now().UTC()
	turns := []models.ChatMessage{
		{Role: models.ChatRoleUser, Content: message, CreatedAt: now},
	}

	reply, llmErr := s.provider.Answer(ctx, system, history, message)
	if llmErr != nil {
		// the question still gets recorded so the admin sees what went unanswered
		if err := s.sessions.AppendMessages(ctx, sess.SessionID, turns); err != nil {
			s.log.WithError(err).WithField("session_id", sess.SessionID).Error("failed to record chat turn")
		}
		_ = s.sessions.SetUnresolved(ctx, sess.SessionID, true)
		return nil, utils.E(utils.CodeUnavailable, op, "assistant is unavailable", llmErr)
	}

	turns = append(turns, models.ChatMessage{
		Role:      models.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.sessions.AppendMessages(ctx, sess.SessionID, turns); err != nil {
		s.log.WithError(err).WithField("session_id", sess.SessionID).Error("failed to record chat turn")
	}
	if !matched {
		_ = s.sessions.SetUnresolved(ctx, sess.SessionID, true)
	}

	return &ChatReply{Reply: reply, SessionID: sess.SessionID}, nil
}

// ensureSession resolves sessionID to an existing session or creates a fresh
// one. Unknown ids are replaced rather than rejected: a stale id from a
// reloaded page just starts a new conversation.
func (s *chatService) ensureSession(ctx context.Context, sessionID, clientIP string) (*models.ChatSession, error) {
	if sessionID != "" {
		sess, err := s.sessions.GetBySessionID(ctx, sessionID)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, utils.ErrNotFound) {
			return nil, err
		}
	}

	sess := &models.ChatSession{
		SessionID: uuid.NewString(),
		ClientIP:  clientIP,
		Messages:  []models.ChatMessage{},
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// matchKnowledge reports whether any knowledge item's keywords appear in the
// message. Question fields hold comma-separated keywords.
func matchKnowledge(items []models.KnowledgeItem, message string) bool {
	msg := strings.ToLower(message)
	for _, item := range items {
		for _, kw := range strings.Split(item.Question, ",") {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(msg, kw) {
				return true
			}
		}
	}
	return false
}

func buildSystemPrompt(settings []models.AssistantSetting, items []models.KnowledgeItem) string {
	var sb strings.Builder

	byKey := map[string]string{}
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}

	if v := byKey[models.SettingSystemPrompt]; v != "" {
		sb.WriteString(v)
		sb.WriteString("\n\n")
	}
	if v := byKey[models.SettingCurrentStatus]; v != "" {
		sb.WriteString("Statut actuel: ")
		sb.WriteString(v)
		sb.WriteString("\n\n")
	}

	if len(items) > 0 {
		sb.WriteString("Base de connaissances (réponds uniquement à partir de ces éléments):\n")
		for _, item := range items {
			sb.WriteString("- ")
			sb.WriteString(item.Question)
			sb.WriteString(": ")
			sb.WriteString(item.Answer)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

func (s *chatService) ListSessions(ctx context.Context, limit int) ([]models.ChatSession, error) {
	const op = "ChatService.ListSessions"

	rows, err := s.sessions.List(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list chat sessions", err)
	}
	return rows, nil
}

func (s *chatService) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	const op = "ChatService.GetSession"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	sess, err := s.sessions.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get session", err)
	}
	return sess, nil
}

func (s *chatService) DeleteSession(ctx context.Context, sessionID string) error {
	const op = "ChatService.DeleteSession"

	if sessionID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "session not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete session", err)
	}
	return nil
}
