package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

const remotiveAPI = "https://remotive.com/api/remote-jobs"

// SearchRemotive queries the Remotive public JSON API for remote listings.
// No credentials required, so this adapter is always on.
func SearchRemotive(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrRemotiveRequests()

	term := firstOr(query.Skills, firstOr(query.JobTitles, "developer"))

	u, err := url.Parse(remotiveAPI)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("search", term)
	q.Set("limit", "20")
	u.RawQuery = q.Encode()

	body, err := engine.GetJSON(ctx, client, u.String(), nil)
	if err != nil {
		return nil, err
	}

	jobs := parseRemotive(body)
	slog.Debug("remotive: search complete", slog.String("term", term), slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseRemotive maps the Remotive jobs array onto canonical listings.
func parseRemotive(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "jobs") {
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(item, "title", "N/A"),
			Company:            strAt(item, "company_name", "N/A"),
			Location:           strAt(item, "candidate_required_location", "Remote"),
			URL:                strAt(item, "url", "#"),
			Source:             "Remotive.io",
			DescriptionSnippet: engine.Snippet(strAt(item, "description", "")),
		})
	}
	return jobs
}
