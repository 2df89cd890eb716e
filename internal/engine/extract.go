package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"
)

// Extractor converts free-form job requests into StructuredQuery values
// through one constrained LLM call. A nil Extractor is the "backend never
// came up" handle: every call on it fails fast with ErrNotReady, so request
// handlers hold an explicit readiness result instead of a mutable global.
type Extractor struct {
	client *llm.Client
}

// NewExtractor wraps the configured LLM client; returns nil for a nil client.
func NewExtractor(client *llm.Client) *Extractor {
	if client == nil {
		return nil
	}
	return &Extractor{client: client}
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// rawQueryLimit bounds the user text embedded into the prompt.
const rawQueryLimit = 2000

// Extract runs the constrained generation call and decodes the reply into a
// StructuredQuery. The backend reply is untrusted: field presence and types
// are validated before anything flows downstream. Failures surface as
// *ExtractionError; a nil handle returns ErrNotReady. No retry, one shot.
func (e *Extractor) Extract(ctx context.Context, raw string) (*StructuredQuery, error) {
	if e == nil || e.client == nil {
		return nil, ErrNotReady
	}
	IncrExtractCalls()

	prompt := fmt.Sprintf(extractPrompt, TruncateRunes(strings.TrimSpace(raw), rawQueryLimit, ""))
	reply, err := e.client.Complete(ctx, "", prompt)
	if err != nil {
		IncrExtractErrors()
		return nil, &ExtractionError{Stage: "backend", Err: err}
	}

	q, err := decodeStructuredQuery(stripFences(reply))
	if err != nil {
		IncrExtractErrors()
		return nil, err
	}

	slog.Debug("extract: query parsed",
		slog.Int("skills", len(q.Skills)),
		slog.Int("locations", len(q.Locations)),
		slog.Int("job_titles", len(q.JobTitles)),
		slog.String("experience", q.ExperienceLevel),
	)
	return q, nil
}

// rawStructuredQuery mirrors StructuredQuery with pointer fields so that an
// absent field is distinguishable from a present-but-empty one.
type rawStructuredQuery struct {
	Skills          *[]string `json:"skills"`
	Locations       *[]string `json:"locations"`
	ExperienceLevel *string   `json:"experience_level"`
	JobTitles       *[]string `json:"job_titles"`
	SearchKeywords  *[]string `json:"search_keywords"`
}

func decodeStructuredQuery(reply string) (*StructuredQuery, error) {
	var rq rawStructuredQuery
	if err := json.Unmarshal([]byte(reply), &rq); err != nil {
		return nil, &ExtractionError{Stage: "decode", Err: fmt.Errorf("reply is not the required shape: %w", err)}
	}

	required := []struct {
		name string
		val  *[]string
	}{
		{"skills", rq.Skills},
		{"locations", rq.Locations},
		{"job_titles", rq.JobTitles},
		{"search_keywords", rq.SearchKeywords},
	}
	for _, f := range required {
		if f.val == nil {
			return nil, &ExtractionError{Stage: "validate", Err: fmt.Errorf("missing required field %q", f.name)}
		}
	}
	if len(*rq.JobTitles) == 0 {
		return nil, &ExtractionError{Stage: "validate", Err: errors.New("job_titles is empty")}
	}

	q := &StructuredQuery{
		Skills:         *rq.Skills,
		Locations:      *rq.Locations,
		JobTitles:      *rq.JobTitles,
		SearchKeywords: *rq.SearchKeywords,
	}
	if rq.ExperienceLevel != nil {
		q.ExperienceLevel = strings.ToLower(strings.TrimSpace(*rq.ExperienceLevel))
	}
	return q, nil
}
