package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/filter"
	"github.com/s0up4200/gamejolt/gamejolt"
)

var (
	scoreTable      int
	scoreLimit      int
	scoreMine       bool
	scoreGuest      string
	scoreBetterThan int64
	scoreWorseThan  int64
	scoreFilter     string
	scorePreset     string
	scoreExtra      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Read and submit scores",
}

var scoresListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scores of a table",
	Long: `List scores of a table, the primary table by default.

Filter expressions see Score, Sort, ExtraData, User, UserID, Guest, IsGuest,
Name and Stored, plus by("name") and the hasText, hasPrefix,
hasSuffix, lower and date helpers:

  gjctl scores list --limit 100 --filter 'Sort > 1000 && daysSince(Stored) < 7'`,
	Args: cobra.NoArgs,
	RunE: runScoresList,
}

var scoresAddCmd = &cobra.Command{
	Use:   "add <score> <sort>",
	Short: "Submit a score for the player or a guest",
	Long: `Submit a score. <score> is the display string ("500 Jumps"), <sort> the
numeric value the table is ordered by. Without --guest the configured player
is used.`,
	Args: cobra.ExactArgs(2),
	RunE: runScoresAdd,
}

var scoresRankCmd = &cobra.Command{
	Use:   "rank <sort>",
	Short: "Show the rank a sort value would have in a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sort, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sort value: %s", args[0])
		}

		rank, err := client.Scores.GetRank(cmd.Context(), sort, scoreTable)
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, map[string]any{"sort": sort, "table_id": scoreTable, "rank": rank})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rank %d\n", rank)
		return nil
	},
}

var scoresTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the game's score tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := client.Scores.Tables(cmd.Context())
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, tables)
		}

		out := cmd.OutOrStdout()
		printHeader(out, 80, "%-8s %-30s %-8s %s\n", "ID", "TABLE", "PRIMARY", "DESCRIPTION")
		for _, t := range tables {
			primary := ""
			if t.Primary {
				primary = "✓"
			}
			fmt.Fprintf(out, "%-8d %-30s %-8s %s\n", t.ID, truncate(t.Name, 30), primary, t.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresListCmd, scoresAddCmd, scoresRankCmd, scoresTablesCmd)

	scoresCmd.PersistentFlags().IntVar(&scoreTable, "table", 0, "score table ID (default is the primary table)")

	scoresListCmd.Flags().IntVar(&scoreLimit, "limit", 0, "number of scores to return (1-100, default 10)")
	scoresListCmd.Flags().BoolVar(&scoreMine, "mine", false, "only the player's scores")
	scoresListCmd.Flags().StringVar(&scoreGuest, "guest", "", "only this guest's scores")
	scoresListCmd.Flags().Int64Var(&scoreBetterThan, "better-than", 0, "only scores better than this sort value")
	scoresListCmd.Flags().Int64Var(&scoreWorseThan, "worse-than", 0, "only scores worse than this sort value")
	scoresListCmd.Flags().StringVarP(&scoreFilter, "filter", "f", "", "filter expression")
	scoresListCmd.Flags().StringVarP(&scorePreset, "preset", "p", "", "use a preset filter from config")
	scoresListCmd.MarkFlagsMutuallyExclusive("mine", "guest")
	scoresListCmd.MarkFlagsMutuallyExclusive("better-than", "worse-than")

	scoresAddCmd.Flags().StringVar(&scoreExtra, "extra", "", "extra data stored with the score")
	scoresAddCmd.Flags().StringVar(&scoreGuest, "guest", "", "submit as this guest instead of the player")
}

func runScoresList(cmd *cobra.Command, args []string) error {
	query := gamejolt.ScoreQuery{
		TableID: scoreTable,
		Limit:   scoreLimit,
		Guest:   scoreGuest,
	}
	if cmd.Flags().Changed("better-than") {
		query.BetterThan = &scoreBetterThan
	}
	if cmd.Flags().Changed("worse-than") {
		query.WorseThan = &scoreWorseThan
	}
	if scoreMine {
		user, err := requireUser()
		if err != nil {
			return err
		}
		query.User = user
	}

	f, err := filters.Resolve(scoreFilter, scorePreset)
	if err != nil {
		return err
	}

	scores, err := client.Scores.Fetch(cmd.Context(), query)
	if err != nil {
		return err
	}

	scores, err = filter.Apply(f, scores, filter.ScoreEnv, func(s gamejolt.Score) string {
		return "score " + s.Score
	})
	if err != nil {
		return err
	}

	if wantJSON() {
		return printJSON(cmd, scores)
	}

	out := cmd.OutOrStdout()
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores found.")
		return nil
	}

	printHeader(out, 85, "%-4s %-28s %-24s %-12s %s\n", "#", "SCORE", "PLAYER", "SORT", "STORED")
	for i, s := range scores {
		name := s.DisplayName()
		if s.IsGuest() {
			name += " (guest)"
		}
		fmt.Fprintf(out, "%-4d %-28s %-24s %-12d %s\n", i+1, truncate(s.Score, 28), truncate(name, 24), s.Sort, s.Stored)
	}
	return nil
}

func runScoresAdd(cmd *cobra.Command, args []string) error {
	sort, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sort value: %s", args[1])
	}

	entry := gamejolt.ScoreEntry{
		Score:     args[0],
		Sort:      sort,
		Guest:     scoreGuest,
		TableID:   scoreTable,
		ExtraData: scoreExtra,
	}
	if scoreGuest == "" {
		user, err := requireUser()
		if err != nil {
			return err
		}
		entry.User = user
	}

	if err := client.Scores.Add(cmd.Context(), entry); err != nil {
		return err
	}

	who := scoreGuest
	if entry.User != nil {
		who = entry.User.Username
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Score %q submitted for %s\n", entry.Score, who)
	return nil
}
