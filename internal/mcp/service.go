package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fitquest/internal/activity"
	"github.com/2beens/fitquest/internal/challenges"
	"github.com/2beens/fitquest/internal/gamification"
	"github.com/2beens/fitquest/internal/leaderboard"

	"github.com/google/uuid"
)

type statsReader interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*gamification.UserStats, error)
}

type ranker interface {
	Rank(ctx context.Context, userID uuid.UUID) (*leaderboard.UserRank, error)
	Weekly(ctx context.Context, limit int) (*leaderboard.WeeklyBoard, error)
}

type feeder interface {
	Feed(ctx context.Context, userID uuid.UUID, filter activity.Filter) []activity.Activity
}

type challengeReader interface {
	Current(ctx context.Context) (*challenges.Challenge, error)
}

// contextService is what the tool handlers need; split out for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*gamification.UserStats, error)
	GetUserRank(ctx context.Context, userID uuid.UUID) (*leaderboard.UserRank, error)
	GetActivityFeed(ctx context.Context, userID uuid.UUID, filter activity.Filter) []activity.Activity
	GetWeeklyLeaderboard(ctx context.Context, limit int) (*leaderboard.WeeklyBoard, error)
	GetCurrentChallenge(ctx context.Context) (*challenges.Challenge, error)
}

// ContextService exposes read-only fitness context to MCP clients.
type ContextService struct {
	schema     SchemaRepo
	stats      statsReader
	ranker     ranker
	feed       feeder
	challenges challengeReader
}

type ContextServiceParams struct {
	Schema     SchemaRepo
	Stats      statsReader
	Ranker     ranker
	Feed       feeder
	Challenges challengeReader
}

func NewContextService(params ContextServiceParams) *ContextService {
	return &ContextService{
		schema:     params.Schema,
		stats:      params.Stats,
		ranker:     params.Ranker,
		feed:       params.Feed,
		challenges: params.Challenges,
	}
}

// GetSchema returns the fitquest tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# FitQuest DB Schema\n\nNo fitquest tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# FitQuest DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetUserStats(ctx context.Context, userID uuid.UUID) (*gamification.UserStats, error) {
	return s.stats.GetStats(ctx, userID)
}

func (s *ContextService) GetUserRank(ctx context.Context, userID uuid.UUID) (*leaderboard.UserRank, error) {
	return s.ranker.Rank(ctx, userID)
}

func (s *ContextService) GetActivityFeed(ctx context.Context, userID uuid.UUID, filter activity.Filter) []activity.Activity {
	return s.feed.Feed(ctx, userID, filter)
}

func (s *ContextService) GetWeeklyLeaderboard(ctx context.Context, limit int) (*leaderboard.WeeklyBoard, error) {
	return s.ranker.Weekly(ctx, limit)
}

func (s *ContextService) GetCurrentChallenge(ctx context.Context) (*challenges.Challenge, error) {
	return s.challenges.Current(ctx)
}
