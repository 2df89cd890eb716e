package jobs

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// Recommend runs the full pipeline for one raw user query: structured
// extraction, concurrent provider fan-out, ranking, assembly. Stages run
// strictly in that order. The only errors it returns are extraction
// failures; provider trouble degrades to fewer listings, never to a
// request failure.
func Recommend(ctx context.Context, ex *engine.Extractor, rawText string) (*engine.RecommendationResponse, error) {
	engine.IncrRecommendRequests()

	query, err := ex.Extract(ctx, rawText)
	if err != nil {
		return nil, err
	}

	var listings []engine.JobListing
	_ = engine.TrackOperation(ctx, "fetch_all", func(ctx context.Context) error {
		listings = FetchAll(ctx, query)
		return nil
	})

	best, other := Rank(listings, query)

	slog.Info("recommend: complete",
		slog.Int("total", len(listings)),
		slog.Int("best", len(best)),
		slog.Int("other", len(other)))

	return &engine.RecommendationResponse{
		StructuredQuery: *query,
		TotalJobsFound:  len(listings),
		BestMatches:     best,
		OtherJobs:       other,
	}, nil
}
