package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

type versionsFlags struct {
	json     bool
	category string
	only     []string
	noCache  bool
	refresh  bool
}

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var flags versionsFlags

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Show the latest version of every stack",
		Long: `Resolve and print the latest version of every stack in the catalog.

Versions are cached for an hour. With a valid cache the cached versions are
printed immediately and refreshed in the background before exit.

Examples:
  latest-stack versions
  latest-stack versions --category database
  latest-stack versions --only go,rust,python --json
  latest-stack versions --refresh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVersions(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print JSON instead of tables")
	cmd.Flags().StringVar(&flags.category, "category", "", "only show one category")
	cmd.Flags().StringSliceVar(&flags.only, "only", nil, "only show these stack ids (comma-separated)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "neither read nor write the version cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached versions and resolve now")

	return cmd
}

func (c *CLI) runVersions(ctx context.Context, w io.Writer, flags versionsFlags) error {
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}
	keep, err := stackFilter(flags.category, flags.only)
	if err != nil {
		return err
	}
	shown := cat.Filter(keep)

	// The cache always holds the whole catalog; filters apply to output only.
	m, closeCache := c.newManager(ctx, flags.noCache)
	defer closeCache()

	state := m.Store().InitialState(ctx)
	cached := !state.IsLoading && !flags.refresh

	var spinner *Spinner
	if !cached && !flags.json {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %d stacks...", len(cat.Stacks)))
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	var versions resolve.VersionMap
	if flags.refresh {
		versions = m.Refresh(ctx, cat.Stacks)
	} else {
		versions = m.Fetch(ctx, cat.Stacks, nil)
	}
	if spinner != nil {
		spinner.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cached {
		prog.done(fmt.Sprintf("Resolved %d versions", len(versions.Known())))
	}

	if flags.json {
		return writeVersionsJSON(w, shown.Stacks, versions)
	}

	printVersions(shown, versions)
	printVersionStats(countKnown(shown.Stacks, versions), len(shown.Stacks), cached)
	if !versions.HasAny() {
		printNewline()
		printWarning(advisory)
	}
	if cached {
		c.Logger.Debug("refreshing cached versions before exit")
	}
	return nil
}

// printVersions prints one table per category.
func printVersions(cat *catalog.Catalog, versions resolve.VersionMap) {
	for _, g := range cat.Groups() {
		rows := make([][]string, 0, len(g.Stacks))
		for _, s := range g.Stacks {
			rows = append(rows, []string{s.Name, displayVersion(versions[s.ID])})
		}
		fmt.Println(StyleTitle.Render(g.Category.Title()))
		fmt.Println(renderTable([]string{"Stack", "Version"}, rows, 1))
	}
}

// versionEntry is one element of the JSON output.
type versionEntry struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Version  string           `json:"version"`
	URL      string           `json:"url,omitempty"`
}

func writeVersionsJSON(w io.Writer, stacks []catalog.Stack, versions resolve.VersionMap) error {
	out := make([]versionEntry, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, versionEntry{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
			Version:  versions[s.ID],
			URL:      s.URL,
		})
	}
	return writeJSON(w, out)
}

func countKnown(stacks []catalog.Stack, versions resolve.VersionMap) int {
	n := 0
	for _, s := range stacks {
		if versions[s.ID] != "" {
			n++
		}
	}
	return n
}
