package services

import (
	"sync"

	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
)

// ConversationContext is what the pipeline remembers about a session
type ConversationContext struct {
	LastIntent intents.Intent `json:"last_intent"`
	LastEntity string         `json:"last_entity"`
}

// ConversationMemory keeps per-session conversation context. Entries are
// overwritten whole after every successful dispatch; failed and unrecognized
// runs leave memory untouched.
type ConversationMemory struct {
	mu       sync.RWMutex
	sessions map[string]ConversationContext
}

// NewConversationMemory creates an empty conversation memory
func NewConversationMemory() *ConversationMemory {
	return &ConversationMemory{
		sessions: make(map[string]ConversationContext),
	}
}

// Update overwrites the remembered context for a session
func (m *ConversationMemory) Update(sessionID string, intent intents.Intent, entity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = ConversationContext{LastIntent: intent, LastEntity: entity}
}

// Context returns the remembered context for a session, if any
func (m *ConversationMemory) Context(sessionID string) (ConversationContext, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ctx, ok := m.sessions[sessionID]
	return ctx, ok
}

// Len returns the number of sessions with remembered context
func (m *ConversationMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
