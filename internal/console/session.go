package console

import (
	"sync"
	"time"

	"github.com/shahzadali/clothshop/internal/domain/models"
)

// SessionManager holds the in-memory assistant conversation for the running
// console. History lives only for the lifetime of the process.
type SessionManager struct {
	history []models.ChatMessage
	mu      sync.RWMutex
	now     func() time.Time
}

// NewSessionManager creates an empty chat session.
func NewSessionManager() *SessionManager {
	return &SessionManager{now: time.Now}
}

// History returns a copy of the conversation so far.
func (sm *SessionManager) History() []models.ChatMessage {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	out := make([]models.ChatMessage, len(sm.history))
	copy(out, sm.history)
	return out
}

// Append records one conversation turn.
func (sm *SessionManager) Append(role, content string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.history = append(sm.history, models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: sm.now().Format(time.RFC3339),
	})
}

// Clear drops the conversation history.
func (sm *SessionManager) Clear() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.history = nil
}
