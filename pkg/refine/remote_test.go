package refine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brd-studio-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestRemoteProviderRefine(t *testing.T) {
	var got remoteRefineRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refine", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(remoteRefineResponse{
			Refined:     "Formalized text.",
			SourcesUsed: []string{"rfp.pdf"},
		})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL)
	res, err := p.Refine(context.Background(), RefineRequest{
		SelectedText:   "legacy system",
		Instruction:    "make this more formal",
		SectionContext: "functional_requirements",
		Mode:           "refine",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Formalized text.", res.Content)
	assert.Equal(t, store.KindRewrite, res.Kind)
	assert.Equal(t, []string{"rfp.pdf"}, res.SourcesUsed)

	assert.Equal(t, "legacy system", got.SelectedText)
	assert.Equal(t, "simple", got.Mode)
}

func TestRemoteProviderRefineAgenticMode(t *testing.T) {
	var got remoteRefineRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(remoteRefineResponse{Refined: "x"})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL)
	res, err := p.Refine(context.Background(), RefineRequest{Mode: "generate", Instruction: "draft risks"})

	assert.NoError(t, err)
	assert.Equal(t, "agentic", got.Mode)
	// Generate output must classify as a generation so accept appends.
	assert.Equal(t, store.KindGeneration, res.Kind)
}

func TestRemoteProviderChatClassifiesKind(t *testing.T) {
	cases := map[string]store.ResponseKind{
		"refinement": store.KindRewrite,
		"answer":     store.KindAnswer,
		"generation": store.KindGeneration,
		"mystery":    store.KindRewrite,
	}

	for wireType, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat", r.URL.Path)
			json.NewEncoder(w).Encode(remoteChatResponse{
				Content:       "reply",
				ResponseType:  wireType,
				ToolCallsMade: 2,
			})
		}))

		p := NewRemoteProvider(srv.URL)
		res, err := p.Chat(context.Background(), ChatRequest{Message: "hi"})
		srv.Close()

		assert.NoError(t, err)
		assert.Equal(t, want, res.Kind, "wire type %q", wireType)
		assert.Equal(t, 2, res.ToolCallsMade)
	}
}

func TestRemoteProviderSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL)
	_, err := p.Chat(context.Background(), ChatRequest{Message: "hi"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
