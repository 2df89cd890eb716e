package jobs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// National Career Service, the central Govt. of India job portal. The
// portal has no public JSON API; partner access needs registration. Until
// that exists the adapter stays a placeholder and answers with a single
// informational listing pointing at the portal.
const ncsPortal = "https://www.ncs.gov.in/"

// SearchNCS returns a pointer to the National Career Service portal for
// the user's location. Requires NCS_API_KEY.
func SearchNCS(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrNCSRequests()

	if engine.Cfg.NCSAPIKey == "" {
		slog.Debug("ncs: credentials not set, skipping")
		return nil, nil
	}

	location := firstOr(query.Locations, "India")
	slog.Debug("ncs: placeholder result", slog.String("location", location))

	return []engine.JobListing{{
		Title:              "Jobs on National Career Service Portal",
		Company:            "Govt. of India (NCS)",
		Location:           location,
		URL:                ncsPortal,
		Source:             "ncs.gov.in",
		DescriptionSnippet: "This is a placeholder for jobs from the official Govt. of India job portal. Go to the URL to search for live vacancies.",
	}}, nil
}
