package store

import (
	"sync"
	"time"
)

// ResponseKind classifies what the refiner produced for a turn. The
// accept path branches on it, so parsing is strict: unknown values are
// an error rather than a silent default.
type ResponseKind int

const (
	// KindRewrite replaces the selected text with a refined version.
	KindRewrite ResponseKind = iota
	// KindAnswer is conversational, it never touches the document.
	KindAnswer
	// KindGeneration is net-new content appended after the selection.
	KindGeneration
)

func (k ResponseKind) String() string {
	switch k {
	case KindRewrite:
		return "rewrite"
	case KindAnswer:
		return "answer"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// ParseResponseKind maps wire values onto a ResponseKind. "refinement"
// is accepted as an alias for rewrite because older refiner builds
// still emit it.
func ParseResponseKind(s string) (ResponseKind, bool) {
	switch s {
	case "rewrite", "refinement":
		return KindRewrite, true
	case "answer":
		return KindAnswer, true
	case "generation":
		return KindGeneration, true
	default:
		return KindRewrite, false
	}
}

// ChatMessage is a single turn inside a refinement session.
type ChatMessage struct {
	Role        string    `json:"role"` // "user" | "assistant" | "system"
	Content     string    `json:"content"`
	Kind        string    `json:"kind,omitempty"`
	SourcesUsed []string  `json:"sources_used,omitempty"`
	IsError     bool      `json:"is_error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RefinementSession is the in-memory state of one refine popup. One
// session per (client, section) selection; it lives until reset,
// accepted, or evicted by the cache TTL.
type RefinementSession struct {
	ID         string `json:"id"`
	ClientID   string `json:"client_id"`
	BrdID      string `json:"brd_id"`
	SectionKey string `json:"section_key"`
	Mode       string `json:"mode"` // "refine" | "generate"

	// OriginalText is the seed selection. It is never mutated after
	// InitSession; accept uses it to locate the replacement span.
	OriginalText string `json:"original_text"`

	// ConflictPosition attaches the session to a conflict card when the
	// session was opened through Resolve with AI. Nil otherwise.
	ConflictPosition *int `json:"conflict_position,omitempty"`

	Messages []ChatMessage `json:"messages"`

	// LatestOutput holds the newest actionable refiner output.
	// HasOutput distinguishes "no output yet" from an empty string.
	LatestOutput string       `json:"latest_output"`
	LatestKind   ResponseKind `json:"latest_kind"`
	HasOutput    bool         `json:"has_output"`

	// Loading guards against overlapping sends on the same session.
	// Read and written only through BeginTurn/EndTurn/InFlight; the
	// session pointer is shared between concurrent handlers.
	Loading bool `json:"loading"`

	CreatedAt time.Time `json:"created_at"`

	mu sync.Mutex
}

// BeginTurn claims the session's single in-flight slot. It reports
// false when another turn already holds it, so a concurrent second
// send is rejected instead of racing on the transcript.
func (s *RefinementSession) BeginTurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Loading {
		return false
	}
	s.Loading = true
	return true
}

// EndTurn releases the in-flight slot.
func (s *RefinementSession) EndTurn() {
	s.mu.Lock()
	s.Loading = false
	s.mu.Unlock()
}

// InFlight reports whether a turn currently holds the slot.
func (s *RefinementSession) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Loading
}

// CarryForwardInput is the text the next turn refines: the latest
// accepted-able output when one exists, otherwise the original seed.
func (s *RefinementSession) CarryForwardInput() string {
	if s.HasOutput {
		return s.LatestOutput
	}
	return s.OriginalText
}

// ClearRefinement discards pending output while keeping the chat
// history, so the next turn falls back to the original seed.
func (s *RefinementSession) ClearRefinement() {
	s.LatestOutput = ""
	s.HasOutput = false
}
