package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

const usaJobsAPI = "https://data.usajobs.gov/api/search"

// SearchUSAJobs queries the authenticated USAJobs search API for US
// federal positions. Requires USAJOBS_EMAIL and USAJOBS_API_KEY; the API
// wants the registered email as the User-Agent.
func SearchUSAJobs(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrUSAJobsRequests()

	if engine.Cfg.USAJobsEmail == "" || engine.Cfg.USAJobsAPIKey == "" {
		slog.Debug("usajobs: credentials not set, skipping")
		return nil, nil
	}

	keyword := joinedOr(query.Skills, firstOr(query.JobTitles, "jobs"))

	u, err := url.Parse(usaJobsAPI)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("Keyword", keyword)
	q.Set("LocationName", firstOr(query.Locations, ""))
	q.Set("ResultsPerPage", "20")
	u.RawQuery = q.Encode()

	header := http.Header{}
	header.Set("User-Agent", engine.Cfg.USAJobsEmail)
	header.Set("Authorization-Key", engine.Cfg.USAJobsAPIKey)

	body, err := engine.GetJSON(ctx, client, u.String(), header)
	if err != nil {
		return nil, err
	}

	jobs := parseUSAJobs(body)
	slog.Debug("usajobs: search complete", slog.String("keyword", keyword), slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseUSAJobs maps USAJobs search result items onto canonical listings.
// The interesting fields all sit under MatchedObjectDescriptor.
func parseUSAJobs(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "SearchResult.SearchResultItems") {
		d := item.Get("MatchedObjectDescriptor")
		jobs = append(jobs, engine.JobListing{
			Title:              strAt(d, "PositionTitle", "N/A"),
			Company:            strAt(d, "DepartmentName", "N/A"),
			Location:           strAt(d, "PositionLocationDisplay", "N/A"),
			URL:                strAt(d, "PositionURI", "#"),
			Source:             "USAJobs.gov",
			DescriptionSnippet: engine.Snippet(strAt(d, "UserArea.Details.JobSummary", "")),
		})
	}
	return jobs
}
