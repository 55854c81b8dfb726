package embedding

import (
	"context"
	"math"
)

// Task types forwarded to providers that distinguish indexing from
// querying. Providers without the concept ignore them.
const (
	TaskDocument = "RETRIEVAL_DOCUMENT"
	TaskQuery    = "RETRIEVAL_QUERY"
)

// Provider turns text into a unit-length vector suitable for cosine
// similarity in pgvector.
type Provider interface {
	Embed(ctx context.Context, text string, taskType string) ([]float32, error)
}

// Normalize scales a vector to unit length. Cosine distance over
// pgvector assumes normalized vectors; skipping this silently skews
// similarity scores.
func Normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
