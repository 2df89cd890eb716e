package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// SearchMantiks queries the Mantiks India jobs API via RapidAPI.
// Requires RAPIDAPI_KEY and RAPIDAPI_HOST (the host doubles as the
// endpoint, e.g. "mantiks-india-jobs.p.rapidapi.com").
func SearchMantiks(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrMantiksRequests()

	if engine.Cfg.RapidAPIKey == "" || engine.Cfg.RapidAPIHost == "" {
		slog.Debug("mantiks: credentials not set, skipping")
		return nil, nil
	}

	u := &url.URL{Scheme: "https", Host: engine.Cfg.RapidAPIHost, Path: "/jobs"}
	q := u.Query()
	q.Set("q", joinedOr(query.Skills, firstOr(query.JobTitles, "jobs")))
	q.Set("l", firstOr(query.Locations, "India"))
	q.Set("p", "1")
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("X-RapidAPI-Key", engine.Cfg.RapidAPIKey)
	header.Set("X-RapidAPI-Host", engine.Cfg.RapidAPIHost)

	body, err := engine.GetJSON(ctx, client, u.String(), header)
	if err != nil {
		return nil, err
	}

	jobs := parseMantiks(body)
	slog.Debug("mantiks: search complete", slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseMantiks maps the Mantiks data array onto canonical listings.
func parseMantiks(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "data") {
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(item, "job_title", "N/A"),
			Company:            strAt(item, "company_name", "N/A"),
			Location:           strAt(item, "location", "N/A"),
			URL:                strAt(item, "job_url", "#"),
			Source:             "Mantiks (India)",
			DescriptionSnippet: engine.Snippet(strAt(item, "description", "")),
		})
	}
	return jobs
}
