package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/pkg/cache"
	"github.com/matzehuels/latest-stack/pkg/versioncache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the version cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheShowCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove cached versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := c.newCache(cmd.Context(), false)
			defer backend.Close()

			if fc, ok := backend.(*cache.FileCache); ok {
				count, err := fc.Clear()
				if err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				printSuccess("Cleared %d cached entries", count)
				printDetail("Directory: %s", fc.Dir())
				return nil
			}

			store := versioncache.NewStore(backend, versioncache.Options{Logger: c.Logger})
			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Cleared cached versions")
			printDetail("Backend: %s", c.settings().Cache.Backend)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir := c.settings().Cache.Dir; dir != "" {
				fmt.Fprintln(cmd.OutOrStdout(), dir)
				return nil
			}
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// cacheShowCommand creates the "cache show" subcommand.
func (c *CLI) cacheShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the cached versions without resolving",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := c.newCache(cmd.Context(), false)
			defer backend.Close()

			store := versioncache.NewStore(backend, versioncache.Options{
				TTL:    c.settings().Cache.TTL,
				Logger: c.Logger,
			})
			versions, ok := store.Load(cmd.Context())
			if !ok {
				printInfo("No valid cached versions")
				printNextStep("Populate the cache", appName+" versions")
				return nil
			}

			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			printVersions(cat, versions)
			printVersionStats(countKnown(cat.Stacks, versions), len(cat.Stacks), true)
			printKeyValue("Key", versioncache.Key)
			printKeyValue("TTL", store.TTL().Round(time.Second).String())
			return nil
		},
	}
}
