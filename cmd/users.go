package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/filter"
	"github.com/s0up4200/gamejolt/gamejolt"
)

var usersFilter string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up and authenticate Game Jolt users",
}

var usersGetCmd = &cobra.Command{
	Use:   "get <username|id>...",
	Short: "Show users by username or numeric ID",
	Long: `Show one or more users. Numeric arguments are treated as user IDs and
fetched in a single request; other arguments are fetched by username.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUsersGet,
}

var usersAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check the configured username and token",
	Args:  cobra.NoArgs,
	RunE:  runUsersAuth,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersGetCmd, usersAuthCmd)

	usersGetCmd.Flags().StringVarP(&usersFilter, "filter", "f", "", "filter expression, e.g. 'Developer and !Banned'")
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var ids []int
	var names []string
	for _, arg := range args {
		if id, err := strconv.Atoi(arg); err == nil {
			ids = append(ids, id)
		} else {
			names = append(names, arg)
		}
	}

	var users []gamejolt.User
	if len(ids) > 0 {
		found, err := client.Users.FetchByIDs(ctx, ids...)
		if err != nil {
			return err
		}
		users = append(users, found...)
	}
	for _, name := range names {
		user, err := client.Users.FetchByUsername(ctx, name)
		if err != nil {
			return fmt.Errorf("user %s: %w", name, err)
		}
		users = append(users, *user)
	}

	f, err := filters.Resolve(usersFilter, "")
	if err != nil {
		return err
	}
	users, err = filter.Apply(f, users, filter.UserEnv, func(u gamejolt.User) string {
		return "user " + u.Username
	})
	if err != nil {
		return err
	}

	if wantJSON() {
		return printJSON(cmd, users)
	}

	out := cmd.OutOrStdout()
	printHeader(out, 80, "%-10s %-24s %-14s %-10s %s\n", "ID", "USERNAME", "TYPE", "STATUS", "LAST SEEN")
	for _, u := range users {
		fmt.Fprintf(out, "%-10d %-24s %-14s %-10s %s\n",
			u.ID, truncate(u.Username, 24), u.Type, u.Status, u.LastLoggedIn)
	}
	return nil
}

func runUsersAuth(cmd *cobra.Command, args []string) error {
	user, err := requireUser()
	if err != nil {
		return err
	}

	if err := client.Users.Authenticate(cmd.Context(), user.Username, user.Token); err != nil {
		return fmt.Errorf("authentication failed for %s: %w", user.Username, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Authenticated as %s\n", user.Username)
	return nil
}
