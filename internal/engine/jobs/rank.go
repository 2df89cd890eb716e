package jobs

import (
	"strings"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
)

const bestMatchCap = 10

// prioritySources and schemeKeywords are maintained by hand and must move
// together: a new government provider needs its source label in the first
// set and, if users ask for it by name, its scheme name in the second.
// Nothing derives one set from the other.
var prioritySources = map[string]bool{
	"data.gov.in": true,
	"api.setu.in": true,
	"ncs.gov.in":  true,
}

var schemeKeywords = map[string]bool{
	"mgnrega": true,
	"pmkvy":   true,
	"ncs":     true,
}

// Rank partitions listings into best matches and other jobs.
//
// Entry-level queries without usable skills (none extracted, or only
// government scheme names) surface the government and training sources
// ahead of textual relevance, so a rural user asking for "mgnrega work"
// sees schemes instead of an empty page. Queries carrying real skills
// rank on substring relevance over title and description. Best matches
// cap at 10; priority-source listings are never displaced by the cap.
// Output slices are never nil and their lengths sum to len(listings).
func Rank(listings []engine.JobListing, query *engine.StructuredQuery) (best, other []engine.JobListing) {
	best = []engine.JobListing{}
	other = []engine.JobListing{}

	skills := skillTokens(query.Skills)
	entry := query.EntryLevel()

	hasScheme := false
	for _, s := range skills {
		if schemeKeywords[s] {
			hasScheme = true
			break
		}
	}

	if (len(skills) == 0 || hasScheme) && entry {
		// Scheme branch: priority sources win outright, everything else
		// competes on the non-scheme skill tokens.
		var plain []string
		for _, s := range skills {
			if !schemeKeywords[s] {
				plain = append(plain, s)
			}
		}
		for _, l := range listings {
			if prioritySources[l.Source] || matchesAny(l, plain) {
				best = append(best, l)
			} else {
				other = append(other, l)
			}
		}
	} else {
		for _, l := range listings {
			if matchesAny(l, skills) || (entry && prioritySources[l.Source]) {
				best = append(best, l)
			} else {
				other = append(other, l)
			}
		}
	}

	return capBest(best, other)
}

// skillTokens lower-cases and trims the extracted skills, dropping blanks.
func skillTokens(skills []string) []string {
	tokens := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// matchesAny reports whether any token appears in the listing's title or
// description snippet, case-insensitively.
func matchesAny(l engine.JobListing, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	title := strings.ToLower(l.Title)
	desc := strings.ToLower(l.DescriptionSnippet)
	for _, t := range tokens {
		if strings.Contains(title, t) || strings.Contains(desc, t) {
			return true
		}
	}
	return false
}

// capBest trims best down to bestMatchCap, keeping every priority-source
// listing plus as many others as fit, all in original order. Displaced
// listings append to other after its existing entries, keeping their own
// relative order. When priority listings alone exceed the cap they are
// all kept.
func capBest(best, other []engine.JobListing) ([]engine.JobListing, []engine.JobListing) {
	if len(best) <= bestMatchCap {
		return best, other
	}

	room := bestMatchCap
	for _, l := range best {
		if prioritySources[l.Source] {
			room--
		}
	}

	kept := make([]engine.JobListing, 0, bestMatchCap)
	for _, l := range best {
		switch {
		case prioritySources[l.Source]:
			kept = append(kept, l)
		case room > 0:
			kept = append(kept, l)
			room--
		default:
			other = append(other, l)
		}
	}
	return kept, other
}
