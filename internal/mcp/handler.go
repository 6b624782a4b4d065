package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/fitquest/internal/activity"
	"github.com/2beens/fitquest/internal/auth"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput identifies the user a tool call is about. Over HTTP the
// authenticated user is used when user_id is omitted.
type UserInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User id (UUID); defaults to the authenticated user"`
}

type ActivityFeedInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User id (UUID); defaults to the authenticated user"`
	Type   string `json:"type,omitempty" jsonschema:"Activity type: workout, meal or all"`
	Query  string `json:"query,omitempty" jsonschema:"Case-insensitive text search over title, description and category"`
	Range  string `json:"range,omitempty" jsonschema:"Date range: all, today, week, month or 3months"`
}

// NoInput is the input of tools without arguments.
type NoInput struct{}

type LimitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of entries (default 10, max 100)"`
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func resolveUser(ctx context.Context, raw string) (uuid.UUID, *mcp.CallToolResult) {
	if raw == "" {
		if userID, ok := auth.UserIDFromContext(ctx); ok {
			return userID, nil
		}
		return uuid.Nil, errorResult("user_id is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errorResult("Invalid user_id: use a UUID")
	}
	return userID, nil
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func (h *Handler) GetUserStatsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := resolveUser(ctx, in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		stats, err := h.service.GetUserStats(ctx, userID)
		if err != nil {
			return errorResult("Error fetching stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

func (h *Handler) GetUserRankTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := resolveUser(ctx, in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		rank, err := h.service.GetUserRank(ctx, userID)
		if err != nil {
			return errorResult("Error fetching rank: " + err.Error()), nil, nil
		}
		return jsonResult(rank), nil, nil
	}
}

func (h *Handler) GetActivityFeedTool() func(context.Context, *mcp.CallToolRequest, ActivityFeedInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ActivityFeedInput) (*mcp.CallToolResult, any, error) {
		userID, errRes := resolveUser(ctx, in.UserID)
		if errRes != nil {
			return errRes, nil, nil
		}
		filter, err := activity.ParseFilter(in.Type, in.Query, in.Range)
		if err != nil {
			return errorResult("Invalid filter: " + err.Error()), nil, nil
		}
		return jsonResult(h.service.GetActivityFeed(ctx, userID, filter)), nil, nil
	}
}

func (h *Handler) GetWeeklyLeaderboardTool() func(context.Context, *mcp.CallToolRequest, LimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LimitInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		board, err := h.service.GetWeeklyLeaderboard(ctx, in.Limit)
		if err != nil {
			return errorResult("Error fetching weekly leaderboard: " + err.Error()), nil, nil
		}
		return jsonResult(board), nil, nil
	}
}

func (h *Handler) GetCurrentChallengeTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		c, err := h.service.GetCurrentChallenge(ctx)
		if err != nil {
			return errorResult("Error fetching current challenge: " + err.Error()), nil, nil
		}
		return jsonResult(c), nil, nil
	}
}
