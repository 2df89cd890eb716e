package jobs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// The API key is a path segment, not a query parameter.
const joobleAPI = "https://jooble.org/api/"

// SearchJooble queries the Jooble search API. Requires JOOBLE_API_KEY.
func SearchJooble(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrJoobleRequests()

	if engine.Cfg.JoobleAPIKey == "" {
		slog.Debug("jooble: credentials not set, skipping")
		return nil, nil
	}

	payload := map[string]string{
		"keywords": joinedOr(query.Skills, firstOr(query.JobTitles, "jobs")),
		"location": firstOr(query.Locations, "India"),
	}

	body, err := engine.PostJSON(ctx, client, joobleAPI+engine.Cfg.JoobleAPIKey, payload, nil)
	if err != nil {
		return nil, err
	}

	jobs := parseJooble(body)
	slog.Debug("jooble: search complete", slog.String("keywords", payload["keywords"]), slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseJooble maps the Jooble jobs array onto canonical listings.
func parseJooble(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "jobs") {
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(item, "title", "N/A"),
			Company:            strAt(item, "company", "N/A"),
			Location:           strAt(item, "location", "N/A"),
			URL:                strAt(item, "link", "#"),
			Source:             "Jooble",
			DescriptionSnippet: engine.Snippet(strAt(item, "snippet", "")),
		})
	}
	return jobs
}
