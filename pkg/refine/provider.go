package refine

import (
	"context"

	"brd-studio-be/pkg/store"
)

// RefineRequest is a single-pass edit of the selected text. Mode picks
// the remote processing variant: refine runs a lightweight edit,
// generate is the agentic variant allowed to search the project corpus.
type RefineRequest struct {
	SelectedText   string
	Instruction    string
	SectionContext string
	Mode           string
}

// ChatRequest is a follow-up conversational turn inside a session.
type ChatRequest struct {
	Message        string
	SectionContext string
	SelectedText   string
	History        []store.ChatMessage
}

// Result is a classified refiner output.
type Result struct {
	Content       string
	Kind          store.ResponseKind
	SourcesUsed   []string
	ToolCallsMade int
}

// Provider is the refiner backend. Implementations must be safe for
// concurrent use; sessions share one provider.
type Provider interface {
	Refine(ctx context.Context, req RefineRequest) (*Result, error)
	Chat(ctx context.Context, req ChatRequest) (*Result, error)
}
