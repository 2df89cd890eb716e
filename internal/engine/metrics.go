package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	RecommendRequests atomic.Int64
	ExtractCalls      atomic.Int64
	ExtractErrors     atomic.Int64
	FetchRequests     atomic.Int64
	FetchErrors       atomic.Int64
	ProviderErrors    atomic.Int64
	AdapterPanics     atomic.Int64
	RemotiveRequests  atomic.Int64
	AdzunaRequests    atomic.Int64
	JoobleRequests    atomic.Int64
	MuseRequests      atomic.Int64
	MantiksRequests   atomic.Int64
	MGNREGARequests   atomic.Int64
	PMKVYRequests     atomic.Int64
	NCSRequests       atomic.Int64
	USAJobsRequests   atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"recommend_requests": metrics.RecommendRequests.Load(),
		"extract_calls":      metrics.ExtractCalls.Load(),
		"extract_errors":     metrics.ExtractErrors.Load(),
		"fetch_requests":     metrics.FetchRequests.Load(),
		"fetch_errors":       metrics.FetchErrors.Load(),
		"provider_errors":    metrics.ProviderErrors.Load(),
		"adapter_panics":     metrics.AdapterPanics.Load(),
		"remotive_requests":  metrics.RemotiveRequests.Load(),
		"adzuna_requests":    metrics.AdzunaRequests.Load(),
		"jooble_requests":    metrics.JoobleRequests.Load(),
		"muse_requests":      metrics.MuseRequests.Load(),
		"mantiks_requests":   metrics.MantiksRequests.Load(),
		"mgnrega_requests":   metrics.MGNREGARequests.Load(),
		"pmkvy_requests":     metrics.PMKVYRequests.Load(),
		"ncs_requests":       metrics.NCSRequests.Load(),
		"usajobs_requests":   metrics.USAJobsRequests.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"recommend_requests",
		"extract_calls", "extract_errors",
		"fetch_requests", "fetch_errors",
		"provider_errors", "adapter_panics",
		"remotive_requests", "adzuna_requests", "jooble_requests",
		"muse_requests", "mantiks_requests",
		"mgnrega_requests", "pmkvy_requests", "ncs_requests",
		"usajobs_requests",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// IncrRecommendRequests increments the recommendation request counter.
func IncrRecommendRequests() { metrics.RecommendRequests.Add(1) }

// Incrementors for the extraction layer.
func IncrExtractCalls()  { metrics.ExtractCalls.Add(1) }
func IncrExtractErrors() { metrics.ExtractErrors.Add(1) }

// Incrementors for the shared fetch layer.
func IncrFetchRequests() { metrics.FetchRequests.Add(1) }
func IncrFetchErrors()   { metrics.FetchErrors.Add(1) }

// Incrementors for the jobs/ sub-package.
func IncrProviderErrors()   { metrics.ProviderErrors.Add(1) }
func IncrAdapterPanics()    { metrics.AdapterPanics.Add(1) }
func IncrRemotiveRequests() { metrics.RemotiveRequests.Add(1) }
func IncrAdzunaRequests()   { metrics.AdzunaRequests.Add(1) }
func IncrJoobleRequests()   { metrics.JoobleRequests.Add(1) }
func IncrMuseRequests()     { metrics.MuseRequests.Add(1) }
func IncrMantiksRequests()  { metrics.MantiksRequests.Add(1) }
func IncrMGNREGARequests()  { metrics.MGNREGARequests.Add(1) }
func IncrPMKVYRequests()    { metrics.PMKVYRequests.Add(1) }
func IncrNCSRequests()      { metrics.NCSRequests.Add(1) }
func IncrUSAJobsRequests()  { metrics.USAJobsRequests.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
