package jobs

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

func staticAdapter(jobs ...engine.JobListing) searchFunc {
	return func(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
		return jobs, nil
	}
}

func TestFanOutIsolatesFailures(t *testing.T) {
	registry := []provider{
		{"good", staticAdapter(
			engine.JobListing{Title: "A", Source: "one"},
			engine.JobListing{Title: "B", Source: "one"},
		)},
		{"empty", staticAdapter()},
		{"failing", func(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
			return nil, errors.New("upstream exploded")
		}},
		{"panicking", func(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
			panic("adapter bug")
		}},
		{"other", staticAdapter(engine.JobListing{Title: "C", Source: "two"})},
	}

	all := fanOut(context.Background(), nil, registry, &engine.StructuredQuery{JobTitles: []string{"Any Job"}})

	// Sum of the successful adapters' lengths; failures and panics
	// contribute nothing and abort nothing.
	if len(all) != 3 {
		t.Fatalf("aggregate length = %d, want 3", len(all))
	}
	seen := map[string]bool{}
	for _, l := range all {
		seen[l.Title] = true
	}
	for _, want := range []string{"A", "B", "C"} {
		if !seen[want] {
			t.Errorf("aggregate missing listing %q", want)
		}
	}
}

func TestFanOutAllFailing(t *testing.T) {
	failing := func(ctx context.Context, client *http.Client, query *engine.StructuredQuery) ([]engine.JobListing, error) {
		return nil, errors.New("down")
	}
	registry := []provider{{"a", failing}, {"b", failing}}

	all := fanOut(context.Background(), nil, registry, &engine.StructuredQuery{JobTitles: []string{"Any Job"}})
	if len(all) != 0 {
		t.Errorf("aggregate length = %d, want 0", len(all))
	}
}

func TestProviderRegistry(t *testing.T) {
	if len(providers) != 9 {
		t.Fatalf("registry has %d providers, want 9", len(providers))
	}
	seen := map[string]bool{}
	for _, p := range providers {
		if p.fn == nil {
			t.Errorf("provider %q has nil adapter", p.name)
		}
		if seen[p.name] {
			t.Errorf("duplicate provider name %q", p.name)
		}
		seen[p.name] = true
	}
}
