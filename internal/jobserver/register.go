package jobserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
	"github.com/anatolykoptev/go_rojgar/internal/engine/jobs"
)

// RegisterTools registers the recommendation tool on the given MCP server.
// ex may be nil when no extraction backend was configured; the tool then
// reports the not-ready error instead of recommendations.
func RegisterTools(server *mcp.Server, ex *engine.Extractor) {
	registerRecommendJobs(server, ex)
}

func registerRecommendJobs(server *mcp.Server, ex *engine.Extractor) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_jobs",
		Description: "Turn a free-form job request written in natural language into ranked job recommendations. Extracts skills, locations and experience level from the text, queries nine job providers concurrently (Remotive, Adzuna, Jooble, The Muse, Mantiks, MGNREGA via data.gov.in, PMKVY skilling centers, National Career Service, USAJobs) and returns structured JSON with best matches and other openings.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.RecommendInput) (*mcp.CallToolResult, engine.RecommendationResponse, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, engine.RecommendationResponse{}, fmt.Errorf("query is required")
		}

		resp, err := jobs.Recommend(ctx, ex, input.Query)
		if err != nil {
			return nil, engine.RecommendationResponse{}, err
		}
		return nil, *resp, nil
	})
}
