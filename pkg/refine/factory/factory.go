package factory

import (
	"fmt"

	"brd-studio-be/pkg/refine"
)

// NewRefineProvider selects the refiner backend. "remote" proxies the
// deployed refiner service; "openai" talks to a chat model directly.
func NewRefineProvider(providerType, refinerURL, apiKey, baseURL, model string) (refine.Provider, error) {
	switch providerType {
	case "remote":
		if refinerURL == "" {
			return nil, fmt.Errorf("remote refine provider requires a refiner URL")
		}
		return refine.NewRemoteProvider(refinerURL), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai refine provider requires an API key")
		}
		return refine.NewOpenAIProvider(apiKey, baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported refine provider: %s", providerType)
	}
}
