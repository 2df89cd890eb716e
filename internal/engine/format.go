package engine

import (
	"fmt"
	"strings"
)

// FormatText renders a RecommendationResponse as plain text: header, query
// analysis, total count, numbered best matches with snippet/URL/source,
// numbered other jobs with URL/source. Pure function of the response, so
// rendering the same value twice yields identical bytes.
func FormatText(resp *RecommendationResponse) string {
	var sb strings.Builder

	sb.WriteString("=== Job Recommendations ===\n\n")
	sb.WriteString("Query analysis:\n")
	fmt.Fprintf(&sb, "  Skills:     %s\n", joinOrDash(resp.StructuredQuery.Skills))
	fmt.Fprintf(&sb, "  Locations:  %s\n", joinOrDash(resp.StructuredQuery.Locations))
	fmt.Fprintf(&sb, "  Experience: %s\n", orDash(resp.StructuredQuery.ExperienceLevel))
	fmt.Fprintf(&sb, "  Job titles: %s\n", joinOrDash(resp.StructuredQuery.JobTitles))
	fmt.Fprintf(&sb, "\nTotal jobs found: %d\n", resp.TotalJobsFound)

	if len(resp.BestMatches) == 0 && len(resp.OtherJobs) == 0 {
		sb.WriteString("\nNo jobs found right now. Try adding a skill or a location to your query.\n")
		return sb.String()
	}

	if len(resp.BestMatches) > 0 {
		fmt.Fprintf(&sb, "\nBest matches (%d):\n", len(resp.BestMatches))
		for i, j := range resp.BestMatches {
			fmt.Fprintf(&sb, "\n%d. %s - %s (%s)\n", i+1, j.Title, j.Company, j.Location)
			if j.DescriptionSnippet != "" {
				fmt.Fprintf(&sb, "   %s\n", j.DescriptionSnippet)
			}
			fmt.Fprintf(&sb, "   %s [%s]\n", j.URL, j.Source)
		}
	}

	if len(resp.OtherJobs) > 0 {
		fmt.Fprintf(&sb, "\nOther jobs (%d):\n", len(resp.OtherJobs))
		for i, j := range resp.OtherJobs {
			fmt.Fprintf(&sb, "\n%d. %s - %s (%s)\n", i+1, j.Title, j.Company, j.Location)
			fmt.Fprintf(&sb, "   %s [%s]\n", j.URL, j.Source)
		}
	}

	return sb.String()
}

func joinOrDash(vals []string) string {
	if len(vals) == 0 {
		return "-"
	}
	return strings.Join(vals, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
