package refine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/pkg/store"
)

// RemoteProvider talks to the refiner service over HTTP. The service
// owns retrieval and classification; this client only moves shapes.
type RemoteProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ Provider = &RemoteProvider{}

func NewRemoteProvider(baseURL string) *RemoteProvider {
	return &RemoteProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type remoteRefineRequest struct {
	SelectedText   string `json:"selected_text"`
	Instruction    string `json:"instruction"`
	SectionContext string `json:"section_context"`
	Mode           string `json:"mode"` // "simple" | "agentic"
}

type remoteRefineResponse struct {
	Refined     string   `json:"refined"`
	SourcesUsed []string `json:"sources_used,omitempty"`
}

type remoteChatRequest struct {
	Message        string `json:"message"`
	SectionContext string `json:"section_context"`
	SelectedText   string `json:"selected_text,omitempty"`
}

type remoteChatResponse struct {
	Content       string   `json:"content"`
	ResponseType  string   `json:"response_type"` // "refinement" | "answer" | "generation"
	SourcesUsed   []string `json:"sources_used,omitempty"`
	ToolCallsMade int      `json:"tool_calls_made,omitempty"`
}

// wireMode maps session modes onto the service's processing variants.
func wireMode(mode string) string {
	if mode == "generate" {
		return "agentic"
	}
	return "simple"
}

func (p *RemoteProvider) Refine(ctx context.Context, req RefineRequest) (*Result, error) {
	payload := remoteRefineRequest{
		SelectedText:   req.SelectedText,
		Instruction:    req.Instruction,
		SectionContext: req.SectionContext,
		Mode:           wireMode(req.Mode),
	}

	var resp remoteRefineResponse
	if err := p.post(ctx, "/refine", payload, &resp); err != nil {
		return nil, err
	}

	// The refine endpoint carries no response_type; the kind follows
	// from the requested mode. Generate turns append on accept, so
	// mislabeling them as rewrites would replace the section instead.
	kind := store.KindRewrite
	if req.Mode == constant.RefinementModeGenerate {
		kind = store.KindGeneration
	}

	return &Result{
		Content:     resp.Refined,
		Kind:        kind,
		SourcesUsed: resp.SourcesUsed,
	}, nil
}

func (p *RemoteProvider) Chat(ctx context.Context, req ChatRequest) (*Result, error) {
	payload := remoteChatRequest{
		Message:        req.Message,
		SectionContext: req.SectionContext,
		SelectedText:   req.SelectedText,
	}

	var resp remoteChatResponse
	if err := p.post(ctx, "/chat", payload, &resp); err != nil {
		return nil, err
	}

	kind, ok := store.ParseResponseKind(resp.ResponseType)
	if !ok {
		// Unknown classifications degrade to rewrite so the output
		// stays actionable; the service is ahead of this client.
		kind = store.KindRewrite
	}

	return &Result{
		Content:       resp.Content,
		Kind:          kind,
		SourcesUsed:   resp.SourcesUsed,
		ToolCallsMade: resp.ToolCallsMade,
	}, nil
}

func (p *RemoteProvider) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("refiner request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refiner error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
