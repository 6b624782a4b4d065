package main

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitquest/internal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var resyncCmd = &cobra.Command{
	Use:   "resync <user-id>...",
	Short: "Rebuild user stats from the activity tables",
	Long: `Recompute totals and streaks of the given users from their completed
workout sessions and daily steps. total_points is overwritten with the sum of
the points ledger, the points of earned badges and one point per 1000 steps.

Examples:
  fitquestctl resync 4b2c7f0e-3a51-4d8e-9a63-0f0d7c2e1b55
  fitquestctl resync --env production <id1> <id2>`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userIDs := make([]uuid.UUID, 0, len(args))
		for _, arg := range args {
			userID, err := uuid.Parse(arg)
			if err != nil {
				return fmt.Errorf("invalid user id [%s]: %w", arg, err)
			}
			userIDs = append(userIDs, userID)
		}

		return withServices(cmd, func(ctx context.Context, services *internal.Services) error {
			for _, userID := range userIDs {
				stats, err := services.Gamification.SyncUserStatsFromActivity(ctx, userID)
				if err != nil {
					return fmt.Errorf("resync %s: %w", userID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: workouts=%d streak=%d longest=%d points=%d\n",
					userID, stats.TotalWorkouts, stats.CurrentStreak, stats.LongestStreak, stats.TotalPoints)
			}
			return nil
		})
	},
}

var rotateChallengeCmd = &cobra.Command{
	Use:   "rotate-challenge",
	Short: "Make sure the challenge for the current week exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, services *internal.Services) error {
			c, err := services.Challenges.EnsureCurrent(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "current challenge: %s [%s, target %.0f] %s - %s\n",
				c.Title, c.Metric, c.TargetValue,
				c.StartsAt.Format(time.DateOnly), c.EndsAt.Format(time.DateOnly))
			return nil
		})
	},
}

var refreshLeaderboardCmd = &cobra.Command{
	Use:   "refresh-leaderboard",
	Short: "Rebuild the weekly leaderboard from the points ledger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, services *internal.Services) error {
			if err := services.Leaderboard.RefreshWeekly(ctx); err != nil {
				return err
			}
			board, err := services.Leaderboard.Weekly(ctx, 10)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "week of %s\n", board.WeekStart.Format(time.DateOnly))
			for _, e := range board.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-28s %6d pts %3d workouts\n",
					e.Position, e.DisplayName, e.Points, e.Workouts)
			}
			return nil
		})
	},
}
