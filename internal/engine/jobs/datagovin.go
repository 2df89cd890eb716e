package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// MGNREGA district-level employment dataset on data.gov.in.
const mgnregaAPI = "https://api.data.gov.in/resource/ee03643a-ee4c-48c2-ac30-9f2ff26ab722"

// SearchMGNREGA queries data.gov.in for MGNREGA rural employment records.
// The dataset carries district statistics (registered workers, job cards),
// not postings, so each record becomes an informational listing for the
// user's district. Requires DATA_GOV_IN_API_KEY.
func SearchMGNREGA(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrMGNREGARequests()

	if engine.Cfg.DataGovInAPIKey == "" {
		slog.Debug("mgnrega: credentials not set, skipping")
		return nil, nil
	}

	u, err := url.Parse(mgnregaAPI)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api-key", engine.Cfg.DataGovInAPIKey)
	q.Set("format", "json")
	q.Set("limit", "50")
	if district := firstOr(query.Locations, ""); district != "" {
		// The dataset stores district names capitalized.
		q.Set("filters[district_name]", capitalizeFirst(district))
	}
	u.RawQuery = q.Encode()

	body, err := engine.GetJSON(ctx, client, u.String(), nil)
	if err != nil {
		return nil, err
	}

	jobs := parseMGNREGA(body)
	slog.Debug("mgnrega: search complete", slog.Int("results", len(jobs)))
	return jobs, nil
}

// parseMGNREGA turns MGNREGA statistical records into informational listings.
func parseMGNREGA(body []byte) []engine.JobListing {
	var jobs []engine.JobListing
	for _, item := range arrayAt(body, "records") {
		district := strAt(item, "district_name", "N/A")
		jobs = append(jobs, engine.JobListing{
			Title:    fmt.Sprintf("MGNREGA Rural Work (%s)", district),
			Company:  "Govt. of India (MGNREGA)",
			Location: district + ", " + strAt(item, "state_name", "N/A"),
			URL:      "https://nrega.nic.in/",
			Source:   "data.gov.in",
			DescriptionSnippet: fmt.Sprintf("Registered Workers: %s. Job Cards Issued: %s. This is statistical data.",
				strAt(item, "total_no_of_workers", "N/A"), strAt(item, "total_no_of_jobcards_issued", "N/A")),
		})
	}
	return jobs
}

// capitalizeFirst upper-cases the first rune and lower-cases the rest.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
