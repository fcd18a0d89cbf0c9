package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/filter"
	"github.com/s0up4200/gamejolt/gamejolt"
)

var (
	onlyAchieved   bool
	onlyUnachieved bool
	trophyFilter   string
	trophyPreset   string
)

var trophiesCmd = &cobra.Command{
	Use:   "trophies",
	Short: "List, grant and revoke the player's trophies",
}

var trophiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game's trophies for the player",
	Long: `List the game's trophies with the player's progress.

Filter expressions see ID, Title, Description, Difficulty, Rank, Achieved and
AchievedOn, plus atLeast("Gold") and the hasText, hasPrefix,
hasSuffix, lower and date helpers:

  gjctl trophies list --filter 'atLeast("Silver") && !Achieved'`,
	Args: cobra.NoArgs,
	RunE: withUser(runTrophiesList),
}

var trophiesGetCmd = &cobra.Command{
	Use:   "get <id>...",
	Short: "Show trophies by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		trophies, err := client.Trophies.FetchByIDs(cmd.Context(), user, ids...)
		if err != nil {
			return err
		}
		return printTrophies(cmd, trophies)
	}),
}

var trophiesAchieveCmd = &cobra.Command{
	Use:   "achieve <id>",
	Short: "Mark a trophy as achieved by the player",
	Args:  cobra.ExactArgs(1),
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid trophy ID: %s", args[0])
		}

		err = client.Trophies.AddAchieved(cmd.Context(), user, id)
		if errors.Is(err, gamejolt.ErrUserAlreadyHasTrophy) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already has trophy %d\n", user.Username, id)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Trophy %d achieved by %s\n", id, user.Username)
		return nil
	}),
}

var trophiesRevokeCmd = &cobra.Command{
	Use:   "revoke <id>",
	Short: "Remove a trophy from the player's achieved trophies",
	Args:  cobra.ExactArgs(1),
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid trophy ID: %s", args[0])
		}

		if err := client.Trophies.RemoveAchieved(cmd.Context(), user, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Trophy %d revoked from %s\n", id, user.Username)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(trophiesCmd)
	trophiesCmd.AddCommand(trophiesListCmd, trophiesGetCmd, trophiesAchieveCmd, trophiesRevokeCmd)

	trophiesListCmd.Flags().BoolVar(&onlyAchieved, "achieved", false, "only achieved trophies")
	trophiesListCmd.Flags().BoolVar(&onlyUnachieved, "unachieved", false, "only trophies not achieved yet")
	trophiesListCmd.Flags().StringVarP(&trophyFilter, "filter", "f", "", "filter expression")
	trophiesListCmd.Flags().StringVarP(&trophyPreset, "preset", "p", "", "use a preset filter from config")
	trophiesListCmd.MarkFlagsMutuallyExclusive("achieved", "unachieved")
}

func runTrophiesList(cmd *cobra.Command, args []string, user *gamejolt.User) error {
	var achieved *bool
	switch {
	case onlyAchieved:
		achieved = &onlyAchieved
	case onlyUnachieved:
		no := false
		achieved = &no
	}

	f, err := filters.Resolve(trophyFilter, trophyPreset)
	if err != nil {
		return err
	}

	trophies, err := client.Trophies.Fetch(cmd.Context(), user, achieved)
	if err != nil {
		return err
	}

	trophies, err = filter.Apply(f, trophies, filter.TrophyEnv, func(t gamejolt.Trophy) string {
		return fmt.Sprintf("trophy %d", t.ID)
	})
	if err != nil {
		return err
	}

	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Int("matches", len(trophies)).Msg("Filtered trophies")
	}
	return printTrophies(cmd, trophies)
}

func printTrophies(cmd *cobra.Command, trophies []gamejolt.Trophy) error {
	if wantJSON() {
		return printJSON(cmd, trophies)
	}

	out := cmd.OutOrStdout()
	if len(trophies) == 0 {
		fmt.Fprintln(out, "No trophies found.")
		return nil
	}

	printHeader(out, 85, "%-8s %-40s %-10s %s\n", "ID", "TROPHY", "DIFFICULTY", "ACHIEVED")
	achieved := 0
	for _, t := range trophies {
		mark := "-"
		if t.IsAchieved() {
			mark = "✓ " + t.Achieved
			achieved++
		}
		fmt.Fprintf(out, "%-8d %-40s %-10s %s\n", t.ID, truncate(t.Title, 40), t.Difficulty, mark)
	}
	fmt.Fprintf(out, "\n%d of %d %s achieved\n", achieved, len(trophies), plural(len(trophies), "trophy", "trophies"))
	return nil
}

// parseIDs converts numeric arguments
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid ID: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
