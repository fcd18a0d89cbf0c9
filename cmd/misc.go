package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/gamejolt"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Show the time on the Game Jolt servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := client.Time.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, st)
		}

		serverTime := st.Time()
		drift := time.Since(serverTime).Round(time.Second)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\nLocal clock differs by %s\n",
			serverTime.Format(time.RFC3339), st.Timezone, drift)
		return nil
	},
}

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List the player's friends",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		ids, err := client.Friends.Fetch(cmd.Context(), user)
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, ids)
		}

		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintf(out, "%s has no friends on Game Jolt yet.\n", user.Username)
			return nil
		}

		friends, err := client.Users.FetchByIDs(cmd.Context(), ids...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s has %d %s:\n", user.Username, len(friends), plural(len(friends), "friend", "friends"))
		for _, f := range friends {
			fmt.Fprintf(out, "  • %s (ID: %d)\n", f.Username, f.ID)
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(timeCmd, friendsCmd)
}
