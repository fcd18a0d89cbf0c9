package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/gamejolt/gamejolt"
)

// maxDataFetches bounds concurrent data store reads
const maxDataFetches = 4

var userScope bool

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Read and write the game's data store",
	Long: `Read and write the game's data store. Keys live in the global store unless
--user is given, in which case the configured player's store is used.`,
}

var dataGetCmd = &cobra.Command{
	Use:   "get <key>...",
	Short: "Read one or more keys",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDataGet,
}

var dataSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := dataScope()
		if err != nil {
			return err
		}
		if err := client.DataStore.Set(cmd.Context(), scope, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Stored %s\n", args[0])
		return nil
	},
}

var dataUpdateCmd = &cobra.Command{
	Use:   "update <key> <operation> <value>",
	Short: "Apply add, subtract, multiply, divide, append or prepend to a key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := dataScope()
		if err != nil {
			return err
		}
		item, err := client.DataStore.Update(cmd.Context(), scope, args[0], gamejolt.Operation(args[1]), args[2])
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, item)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", item.Key, item.Data)
		return nil
	},
}

var dataRemoveCmd = &cobra.Command{
	Use:     "rm <key>",
	Aliases: []string{"remove"},
	Short:   "Remove a key",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := dataScope()
		if err != nil {
			return err
		}
		if err := client.DataStore.Remove(cmd.Context(), scope, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %s\n", args[0])
		return nil
	},
}

var dataKeysCmd = &cobra.Command{
	Use:   "keys [pattern]",
	Short: "List keys, optionally matching a pattern such as 'save_*'",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := dataScope()
		if err != nil {
			return err
		}
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		keys, err := client.DataStore.GetKeys(cmd.Context(), scope, pattern)
		if err != nil {
			return err
		}
		if wantJSON() {
			return printJSON(cmd, keys)
		}
		out := cmd.OutOrStdout()
		if len(keys) == 0 {
			fmt.Fprintln(out, "No keys found.")
			return nil
		}
		for _, key := range keys {
			fmt.Fprintln(out, key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataGetCmd, dataSetCmd, dataUpdateCmd, dataRemoveCmd, dataKeysCmd)

	dataCmd.PersistentFlags().BoolVar(&userScope, "user", false, "use the player's data store instead of the global one")
}

// dataScope returns nil for the global store or the player for --user
func dataScope() (*gamejolt.User, error) {
	if !userScope {
		return nil, nil
	}
	return requireUser()
}

func runDataGet(cmd *cobra.Command, args []string) error {
	scope, err := dataScope()
	if err != nil {
		return err
	}

	items := make([]*gamejolt.DataStoreItem, len(args))
	var missing []string
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxDataFetches)

	for i, key := range args {
		g.Go(func() error {
			item, err := client.DataStore.Fetch(ctx, scope, key)
			if gamejolt.IsAPIError(err) {
				// Unknown keys are reported, they don't abort the other reads
				logger.Warn().Err(err).Str("key", key).Msg("Failed to read key")
				mu.Lock()
				missing = append(missing, key)
				mu.Unlock()
				return nil
			}
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	found := make([]*gamejolt.DataStoreItem, 0, len(items))
	for _, item := range items {
		if item != nil {
			found = append(found, item)
		}
	}

	if wantJSON() {
		if err := printJSON(cmd, found); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, item := range found {
			fmt.Fprintf(out, "%s = %s\n", item.Key, item.Data)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%d of %d %s could not be read", len(missing), len(args), plural(len(args), "key", "keys"))
	}
	return nil
}
