package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// Country-scoped endpoint, page 1. The product targets India.
const adzunaAPI = "https://api.adzuna.com/v1/api/jobs/in/search/1"

// SearchAdzuna queries the Adzuna India search API.
// Requires ADZUNA_APP_ID and ADZUNA_APP_KEY.
func SearchAdzuna(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrAdzunaRequests()

	if engine.Cfg.AdzunaAppID == "" || engine.Cfg.AdzunaAppKey == "" {
		slog.Debug("adzuna: credentials not set, skipping")
		return nil, nil
	}

	what := joinedOr(query.Skills, firstOr(query.JobTitles, "jobs"))
	where := firstOr(query.Locations, "India")

	u, err := url.Parse(adzunaAPI)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("app_id", engine.Cfg.AdzunaAppID)
	q.Set("app_key", engine.Cfg.AdzunaAppKey)
	q.Set("what", what)
	q.Set("where", where)
	q.Set("results_per_page", "20")
	u.RawQuery = q.Encode()

	body, err := engine.GetJSON(ctx, client, u.String(), nil)
	if err != nil {
		return nil, err
	}

	jobs := parseAdzuna(body)
	slog.Debug("adzuna: search complete", slog.String("what", what), slog.String("where", where), slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseAdzuna maps the Adzuna results array onto canonical listings.
func parseAdzuna(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "results") {
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(item, "title", "N/A"),
			Company:            strAt(item, "company.display_name", "N/A"),
			Location:           strAt(item, "location.display_name", "N/A"),
			URL:                strAt(item, "redirect_url", "#"),
			Source:             "Adzuna",
			DescriptionSnippet: engine.Snippet(strAt(item, "description", "")),
		})
	}
	return jobs
}
