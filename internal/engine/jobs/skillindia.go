package jobs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// PMKVY training-centre collection on API Setu. The collection sits behind
// an OAuth handshake this engine does not implement yet, so the adapter is
// a deliberate placeholder: it validates configuration, derives the state
// it would search, and returns one informational listing pointing at the
// Skill India portal instead of real centre data.
// Docs: https://betadirectory.api-setu.in/api-collection/pmkvyofficial
const skillIndiaPortal = "http://pmkvyofficial.org"

// SearchPMKVY returns a pointer to PMKVY skilling centres for the user's
// state. Requires API_SETU_CLIENT_ID and API_SETU_CLIENT_SECRET.
func SearchPMKVY(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
	engine.IncrPMKVYRequests()

	if engine.Cfg.APISetuClientID == "" || engine.Cfg.APISetuClientSecret == "" {
		slog.Debug("pmkvy: credentials not set, skipping")
		return nil, nil
	}

	state := firstOr(query.Locations, "Uttar Pradesh")
	slog.Debug("pmkvy: placeholder result, oauth flow not implemented", slog.String("state", state))

	return []engine.JobListing{{
		Title:              "Find PMKVY Skilling Centers near " + state,
		Company:            "Govt. of India (Skill India)",
		Location:           state,
		URL:                skillIndiaPortal,
		Source:             "api.setu.in",
		DescriptionSnippet: "This API shows locations for government-sponsored skill training (PMKVY). Full API integration requires OAuth.",
	}}, nil
}
