package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrTurnPending is returned when Send is called while a previous turn is
// still in flight. The submission is ignored, nothing is appended.
var ErrTurnPending = errors.New("a chat turn is already pending")

var errMissingReply = errors.New("invalid response format: missing reply")

// Turn is one transcript entry, role "user" or "ai".
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type wirePart struct {
	Text string `json:"text"`
}

type wireTurn struct {
	Role  string     `json:"role"` // "user" | "model"
	Parts []wirePart `json:"parts"`
}

type chatRequest struct {
	Message   string     `json:"message"`
	History   []wireTurn `json:"history"`
	SessionID string     `json:"session_id,omitempty"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// Chat is the widget's conversation state: a local transcript plus the
// server-issued session id, adopted after the first successful turn. The
// transcript is never rolled back, failures land as synthetic assistant
// turns.
type Chat struct {
	c *Client

	mu         sync.Mutex
	open       bool
	busy       bool
	sessionID  string
	transcript []Turn
}

func NewChat(c *Client) *Chat {
	return &Chat{c: c}
}

func (ch *Chat) Open()  { ch.mu.Lock(); ch.open = true; ch.mu.Unlock() }
func (ch *Chat) Close() { ch.mu.Lock(); ch.open = false; ch.mu.Unlock() }

func (ch *Chat) IsOpen() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.open
}

func (ch *Chat) SessionID() string {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.sessionID
}

// Transcript returns a copy of the conversation so far.
func (ch *Chat) Transcript() []Turn {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return append([]Turn(nil), ch.transcript...)
}

// Send runs one turn. The user message is appended before the request goes
// out and stays even when the request fails. Blank submissions are ignored.
// A second Send while one is pending returns ErrTurnPending without side
// effects.
func (ch *Chat) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", nil
	}

	ch.mu.Lock()
	if ch.busy {
		ch.mu.Unlock()
		return "", ErrTurnPending
	}
	ch.busy = true

	// history is the transcript before this message, in wire roles
	history := make([]wireTurn, 0, len(ch.transcript))
	for _, t := range ch.transcript {
		role := "user"
		if t.Role == "ai" {
			role = "model"
		}
		history = append(history, wireTurn{Role: role, Parts: []wirePart{{Text: t.Text}}})
	}
	ch.transcript = append(ch.transcript, Turn{Role: "user", Text: message})
	req := chatRequest{Message: message, History: history, SessionID: ch.sessionID}
	ch.mu.Unlock()

	var resp chatResponse
	err := ch.c.post(ctx, "/chat", req, &resp)

	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.busy = false

	if err == nil && resp.Reply == "" {
		err = errMissingReply
	}
	if err != nil {
		ch.transcript = append(ch.transcript, Turn{
			Role: "ai",
			Text: fmt.Sprintf("Désolé, j'ai rencontré un problème : %v", err),
		})
		return "", err
	}

	ch.transcript = append(ch.transcript, Turn{Role: "ai", Text: resp.Reply})
	if resp.SessionID != "" {
		ch.sessionID = resp.SessionID
	}
	return resp.Reply, nil
}
