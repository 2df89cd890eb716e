package jobs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

// searchFunc is the common adapter contract: derive provider-specific
// parameters from the structured query, call the provider over the shared
// client, map the payload onto canonical listings. A credential-absent
// adapter returns (nil, nil).
type searchFunc func(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error)

type provider struct {
	name string
	fn   searchFunc
}

// providers is the fan-out registry. Order here is launch order only;
// results fold in completion order.
var providers = []provider{
	{"remotive", SearchRemotive},
	{"adzuna", SearchAdzuna},
	{"jooble", SearchJooble},
	{"themuse", SearchTheMuse},
	{"mantiks", SearchMantiks},
	{"mgnrega", SearchMGNREGA},
	{"pmkvy", SearchPMKVY},
	{"ncs", SearchNCS},
	{"usajobs", SearchUSAJobs},
}

type providerResult struct {
	name string
	jobs []engine.JobListing
	err  error
}

// FetchAll runs every registered provider adapter concurrently against one
// request-scoped HTTP client and concatenates the successful results in
// completion order. Adapter failures and panics are logged and dropped;
// they never abort sibling adapters and never reach the caller. The client
// is torn down exactly once after all adapters settle.
func FetchAll(ctx context.Context, query *engine.StructuredQuery) []engine.JobListing {
	client := engine.NewProviderClient()
	defer client.CloseIdleConnections()
	return fanOut(ctx, client, providers, query)
}

func fanOut(ctx context.Context, client *http.Client, registry []provider, query *engine.StructuredQuery) []engine.JobListing {
	results := make(chan providerResult, len(registry))

	for _, p := range registry {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					engine.IncrAdapterPanics()
					slog.Error("fetch: adapter panicked", slog.String("provider", p.name), slog.Any("panic", r))
					results <- providerResult{name: p.name}
				}
			}()
			jobs, err := p.fn(ctx, client, query)
			results <- providerResult{name: p.name, jobs: jobs, err: err}
		}()
	}

	var all []engine.JobListing
	for range registry {
		r := <-results
		if r.err != nil {
			engine.IncrProviderErrors()
			slog.Warn("fetch: provider failed", slog.String("provider", r.name), slog.Any("error", r.err))
			continue
		}
		all = append(all, r.jobs...)
	}
	return all
}
