package llm

import (
	"context"
	"errors"
)

// Turn is one prior exchange handed to the model as conversation context.
type Turn struct {
	Role string // "user" | "model"
	Text string
}

type Provider interface {
	// Answer returns the full assistant reply for the given system prompt,
	// conversation history and new user message.
	Answer(ctx context.Context, system string, history []Turn, message string) (string, error)
	Close() error
}

// Disabled stands in when no model backend is configured. Every call fails,
// which surfaces to visitors as the assistant being unavailable.
type Disabled struct{}

func (Disabled) Answer(ctx context.Context, system string, history []Turn, message string) (string, error) {
	return "", errors.New("no model backend configured")
}

func (Disabled) Close() error { return nil }
