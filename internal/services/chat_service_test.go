package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oubasys/portfolio/internal/logger"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/providers/llm"
	"github.com/oubasys/portfolio/internal/utils"
)

type fakeSessionRepo struct {
	sessions   map[string]*models.ChatSession
	created    int
	unresolved map[string]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:   map[string]*models.ChatSession{},
		unresolved: map[string]bool{},
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *models.ChatSession) error {
	f.created++
	f.sessions[s.SessionID] = s
	return nil
}

func (f *fakeSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) AppendMessages(ctx context.Context, sessionID string, msgs []models.ChatMessage) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return utils.ErrNotFound
	}
	s.Messages = append(s.Messages, msgs...)
	return nil
}

func (f *fakeSessionRepo) SetUnresolved(ctx context.Context, sessionID string, unresolved bool) error {
	f.unresolved[sessionID] = unresolved
	return nil
}

func (f *fakeSessionRepo) List(ctx context.Context, limit int) ([]models.ChatSession, error) {
	var out []models.ChatSession
	for _, s := range f.sessions {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if _, ok := f.sessions[sessionID]; !ok {
		return utils.ErrNotFound
	}
	delete(f.sessions, sessionID)
	return nil
}

type fakeKnowledgeRepo struct {
	items []models.KnowledgeItem
}

func (f *fakeKnowledgeRepo) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	return f.items, nil
}
func (f *fakeKnowledgeRepo) GetByID(ctx context.Context, id uint) (*models.KnowledgeItem, error) {
	return nil, utils.ErrNotFound
}
func (f *fakeKnowledgeRepo) Create(ctx context.Context, k *models.KnowledgeItem) error { return nil }
func (f *fakeKnowledgeRepo) Update(ctx context.Context, k *models.KnowledgeItem) error { return nil }
func (f *fakeKnowledgeRepo) Delete(ctx context.Context, id uint) error                 { return nil }

type fakeSettingRepo struct {
	settings []models.AssistantSetting
}

func (f *fakeSettingRepo) List(ctx context.Context) ([]models.AssistantSetting, error) {
	return f.settings, nil
}
func (f *fakeSettingRepo) Upsert(ctx context.Context, s *models.AssistantSetting) error { return nil }

type fakeProvider struct {
	reply      string
	err        error
	calls      int
	lastSystem string
}

func (f *fakeProvider) Answer(ctx context.Context, system string, history []llm.Turn, message string) (string, error) {
	f.calls++
	f.lastSystem = system
	return f.reply, f.err
}
func (f *fakeProvider) Close() error { return nil }

func chatFixture(provider *fakeProvider, items []models.KnowledgeItem, settings []models.AssistantSetting) (ChatService, *fakeSessionRepo) {
	sessions := newFakeSessionRepo()
	svc := NewChatService(
		sessions,
		&fakeKnowledgeRepo{items: items},
		&fakeSettingRepo{settings: settings},
		provider,
		logger.New(),
	)
	return svc, sessions
}

func TestSendCreatesSessionOnFirstTurn(t *testing.T) {
	provider := &fakeProvider{reply: "Salam !"}
	svc, sessions := chatFixture(provider, nil, nil)

	out, err := svc.Send(context.Background(), "1.2.3.4", "Bonjour", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if out.Reply != "Salam !" {
		t.Errorf("reply = %q", out.Reply)
	}
	if out.SessionID == "" {
		t.Fatal("no session id issued")
	}
	if sessions.created != 1 {
		t.Errorf("created %d sessions, want 1", sessions.created)
	}

	sess := sessions.sessions[out.SessionID]
	if len(sess.Messages) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(sess.Messages))
	}
	if sess.Messages[0].Role != models.ChatRoleUser || sess.Messages[0].Content != "Bonjour" {
		t.Errorf("user turn = %+v", sess.Messages[0])
	}
	if sess.Messages[1].Role != models.ChatRoleAssistant || sess.Messages[1].Content != "Salam !" {
		t.Errorf("assistant turn = %+v", sess.Messages[1])
	}
	if sess.ClientIP != "1.2.3.4" {
		t.Errorf("client ip = %q", sess.ClientIP)
	}
}

func TestSendReusesKnownSessionAndReplacesUnknown(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, sessions := chatFixture(provider, nil, nil)
	ctx := context.Background()

	first, err := svc.Send(ctx, "ip", "hello", nil, "")
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.Send(ctx, "ip", "again", nil, first.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if second.SessionID != first.SessionID {
		t.Errorf("known id not reused: %q vs %q", second.SessionID, first.SessionID)
	}
	if sessions.created != 1 {
		t.Errorf("created %d sessions, want 1", sessions.created)
	}

	third, err := svc.Send(ctx, "ip", "stale tab", nil, "no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if third.SessionID == "no-such-session" || third.SessionID == "" {
		t.Errorf("unknown id not replaced: %q", third.SessionID)
	}
	if sessions.created != 2 {
		t.Errorf("created %d sessions, want 2", sessions.created)
	}
}

func TestSendFlagsUnresolvedWithoutKnowledgeMatch(t *testing.T) {
	items := []models.KnowledgeItem{
		{Question: "stage, alternance", Answer: "Je cherche un stage de 2 mois."},
	}
	provider := &fakeProvider{reply: "..."}
	svc, sessions := chatFixture(provider, items, nil)
	ctx := context.Background()

	matched, err := svc.Send(ctx, "ip", "Cherchez-vous un stage ?", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if sessions.unresolved[matched.SessionID] {
		t.Error("matched question flagged unresolved")
	}

	unmatched, err := svc.Send(ctx, "ip", "Aimes-tu le couscous ?", nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if !sessions.unresolved[unmatched.SessionID] {
		t.Error("unmatched question not flagged unresolved")
	}
}

func TestSendRecordsQuestionWhenProviderFails(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model timeout")}
	svc, sessions := chatFixture(provider, nil, nil)

	_, err := svc.Send(context.Background(), "ip", "Bonjour", nil, "")
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("error = %v, want UNAVAILABLE", err)
	}

	if len(sessions.sessions) != 1 {
		t.Fatalf("expected the session to exist, have %d", len(sessions.sessions))
	}
	for id, sess := range sessions.sessions {
		if len(sess.Messages) != 1 || sess.Messages[0].Content != "Bonjour" {
			t.Errorf("user turn not recorded: %+v", sess.Messages)
		}
		if !sessions.unresolved[id] {
			t.Error("failed turn not flagged unresolved")
		}
	}
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	provider := &fakeProvider{reply: "never"}
	svc, _ := chatFixture(provider, nil, nil)

	_, err := svc.Send(context.Background(), "ip", "   ", nil, "")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("error = %v, want INVALID_ARGUMENT", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for an empty message", provider.calls)
	}
}

func TestSystemPromptComposition(t *testing.T) {
	settings := []models.AssistantSetting{
		{Key: models.SettingSystemPrompt, Value: "Tu es l'assistant du portfolio."},
		{Key: models.SettingCurrentStatus, Value: "Disponible pour un stage"},
	}
	items := []models.KnowledgeItem{
		{Question: "stage", Answer: "2 mois à partir de juin"},
	}
	provider := &fakeProvider{reply: "ok"}
	svc, _ := chatFixture(provider, items, settings)

	if _, err := svc.Send(context.Background(), "ip", "stage ?", nil, ""); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Tu es l'assistant du portfolio.",
		"Statut actuel: Disponible pour un stage",
		"stage: 2 mois à partir de juin",
	} {
		if !strings.Contains(provider.lastSystem, want) {
			t.Errorf("system prompt missing %q:\n%s", want, provider.lastSystem)
		}
	}
}

func TestMatchKnowledgeKeywords(t *testing.T) {
	items := []models.KnowledgeItem{
		{Question: "stage, alternance, PFE", Answer: "..."},
	}
	tests := []struct {
		msg  string
		want bool
	}{
		{"Je propose un STAGE chez nous", true},
		{"une alternance possible ?", true},
		{"Parlons d'autre chose", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := matchKnowledge(items, tt.msg); got != tt.want {
			t.Errorf("matchKnowledge(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
