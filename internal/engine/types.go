package engine

// --- Structured query ---

// StructuredQuery is the typed form of a free-text job request, produced
// once per request by the extractor and immutable afterwards.
type StructuredQuery struct {
	Skills          []string `json:"skills"`
	Locations       []string `json:"locations"`
	ExperienceLevel string   `json:"experience_level"`
	JobTitles       []string `json:"job_titles"`
	SearchKeywords  []string `json:"search_keywords"`
}

// EntryLevel reports whether the query was classified as entry-level.
func (q StructuredQuery) EntryLevel() bool {
	return q.ExperienceLevel == "entry-level"
}

// --- Listings ---

// JobListing is the canonical record every provider adapter produces.
// Fields are always populated; adapters substitute "N/A" ("#" for URL)
// when the upstream payload lacks a value. Source carries the fixed
// per-provider label the ranker keys on.
type JobListing struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	URL                string `json:"url"`
	Source             string `json:"source"`
	DescriptionSnippet string `json:"description_snippet,omitempty"`
}

// RecommendationResponse is the terminal per-request entity: the query the
// pipeline ran with, the pre-bucketing listing count, and two disjoint
// buckets in adapter-completion order.
type RecommendationResponse struct {
	StructuredQuery StructuredQuery `json:"structured_query"`
	TotalJobsFound  int             `json:"total_jobs_found"`
	BestMatches     []JobListing    `json:"best_matches"`
	OtherJobs       []JobListing    `json:"other_jobs"`
}

// --- MCP tool types ---

// RecommendInput is the input for the recommend_jobs tool.
type RecommendInput struct {
	Query string `json:"query" jsonschema:"Free-form job request in natural language (e.g. 12th pass, need data entry work near Agra)"`
}
