package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

const museAPI = "https://www.themuse.com/api/public/jobs"

// SearchTheMuse queries The Muse public jobs API. Strong on tech roles and
// internships, which makes it useful for entry-level queries.
// Requires THE_MUSE_API_KEY.
func SearchTheMuse(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrMuseRequests()

	if engine.Cfg.TheMuseAPIKey == "" {
		slog.Debug("themuse: credentials not set, skipping")
		return nil, nil
	}

	u, err := url.Parse(museAPI)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api_key", engine.Cfg.TheMuseAPIKey)
	q.Set("page", "1")
	if category := firstOr(query.Skills, ""); category != "" {
		q.Set("category", category)
	}
	if location := firstOr(query.Locations, ""); location != "" {
		q.Set("location", location)
	}
	if query.EntryLevel() {
		// Closest level the API offers for entry-level seekers.
		q.Set("level", "Internship")
	}
	u.RawQuery = q.Encode()

	body, err := engine.GetJSON(ctx, client, u.String(), nil)
	if err != nil {
		return nil, err
	}

	jobs := parseTheMuse(body)
	slog.Debug("themuse: search complete", slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseTheMuse maps The Muse results array onto canonical listings.
// Locations come as a list of objects; the first one wins.
func parseTheMuse(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "results") {
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(item, "name", "N/A"),
			Company:            strAt(item, "company.name", "N/A"),
			Location:           strAt(item, "locations.0.name", "N/A"),
			URL:                strAt(item, "refs.landing_page", "#"),
			Source:             "The Muse",
			DescriptionSnippet: engine.Snippet(strAt(item, "contents", "")),
		})
	}
	return jobs
}
