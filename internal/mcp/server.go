package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the MCP server with the fitness context tools. The main
// backend mounts it at /mcp; cmd/fitquest_mcp serves it over stdio.
func NewServer(svc *ContextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitquest-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_fitquest_schema",
		Description: "Returns the DB schema of the fitquest tables: table names, columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_stats",
		Description: "Returns a user's cumulative stats: total workouts, calories, exercises, steps, current and longest streak, total points.",
	}, h.GetUserStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_rank",
		Description: "Returns a user's all-time leaderboard rank (ties share a rank), total users and percentile.",
	}, h.GetUserRankTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity_feed",
		Description: "Returns the user's unified activity feed (completed workouts and grouped meals), newest first. Optional filters: type, query, range.",
	}, h.GetActivityFeedTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_leaderboard",
		Description: "Returns this week's anonymized leaderboard. It is refreshed periodically and may lag the live ranking.",
	}, h.GetWeeklyLeaderboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_current_challenge",
		Description: "Returns the active weekly challenge: metric, target value, start and end.",
	}, h.GetCurrentChallengeTool())

	return s
}
