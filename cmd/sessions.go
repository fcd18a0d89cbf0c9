package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/gamejolt"
)

var pingIdle bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Open, ping, check and close the player's game session",
	Long: `Manage the player's game session. Game Jolt closes sessions that are not
pinged for about two minutes.`,
}

var sessionsOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a session for the player",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		if err := client.Sessions.Open(cmd.Context(), user); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Session opened for %s\n", user.Username)
		return nil
	}),
}

var sessionsPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Keep the player's session alive",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		status := gamejolt.SessionActive
		if pingIdle {
			status = gamejolt.SessionIdle
		}
		if err := client.Sessions.Ping(cmd.Context(), user, status); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Session pinged (%s)\n", status)
		return nil
	}),
}

var sessionsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether the player has an open session",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		open, err := client.Sessions.Check(cmd.Context(), user)
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, map[string]any{"username": user.Username, "open": open})
		}
		state := "closed"
		if open {
			state = "open"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session for %s is %s\n", user.Username, state)
		return nil
	}),
}

var sessionsCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the player's session",
	Args:  cobra.NoArgs,
	RunE: withUser(func(cmd *cobra.Command, args []string, user *gamejolt.User) error {
		if err := client.Sessions.Close(cmd.Context(), user); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Session closed for %s\n", user.Username)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsOpenCmd, sessionsPingCmd, sessionsCheckCmd, sessionsCloseCmd)

	sessionsPingCmd.Flags().BoolVar(&pingIdle, "idle", false, "report the player as idle")
}

// withUser adapts a command body that needs the configured player
func withUser(run func(cmd *cobra.Command, args []string, user *gamejolt.User) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		user, err := requireUser()
		if err != nil {
			return err
		}
		return run(cmd, args, user)
	}
}
