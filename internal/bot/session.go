package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
)

type conversationStage int

const (
	stageType conversationStage = iota
	stagePerson
	stageCategory
	stageAmount
	stageDescription
)

// draft accumulates the answers of the /agregar dialog.
type draft struct {
	txType   string
	person   string
	category string
	amount   float64
}

type conversationState struct {
	stage     conversationStage
	draft     draft
	updatedAt time.Time
}

// sessionStore keeps the per-chat conversation state. Sessions expire after
// the configured TTL so an abandoned dialog never swallows later messages.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[int64]*conversationState
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[int64]*conversationState),
		now:      time.Now,
	}
}

// get returns the live session for a chat. An expired session is dropped and
// reported as absent.
func (s *sessionStore) get(chatID int64) (*conversationState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	if s.now().Sub(state.updatedAt) > s.ttl {
		delete(s.sessions, chatID)
		return nil, false
	}
	return state, true
}

// put stores the state and refreshes its expiry clock.
func (s *sessionStore) put(chatID int64, state *conversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.updatedAt = s.now()
	s.sessions[chatID] = state
}

func (s *sessionStore) clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// parseAmount reads a user-typed amount. Currency symbols and spaces are
// stripped before parsing; only digits, the decimal point and a minus sign
// survive, so "$ 15000" and "15000 pesos" both mean 15000.
func parseAmount(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no digits in %q", text)
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", text, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", amount)
	}
	return amount, nil
}
