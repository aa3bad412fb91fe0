package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/integrations/github"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

// getResult is the JSON output of the get command.
type getResult struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Strategy string `json:"strategy"`
	Version  string `json:"version"`
}

// getCommand creates the get command.
func (c *CLI) getCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <stack-id | owner/repo>",
		Short: "Resolve the latest version of one stack or GitHub repository",
		Long: `Resolve one version without touching the cache.

The argument is either a stack id from the catalog or any GitHub repository
as owner/repo, which is resolved from its latest release (falling back to
tags when the repository has no releases).

Examples:
  latest-stack get postgresql
  latest-stack get charmbracelet/bubbletea
  latest-stack get java --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGet(cmd.Context(), cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func (c *CLI) runGet(ctx context.Context, w io.Writer, arg string, asJSON bool) error {
	res, err := c.lookupOne(ctx, arg)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, res)
	}

	if res.Name != "" {
		printKeyValue("Stack", res.Name)
	}
	printKeyValue("Strategy", res.Strategy)
	printKeyValue("Version", displayVersion(res.Version))
	if res.Version == "" {
		printNewline()
		printWarning(advisory)
	}
	return nil
}

// lookupOne resolves a catalog id or an owner/repo reference.
func (c *CLI) lookupOne(ctx context.Context, arg string) (getResult, error) {
	if strings.Contains(arg, "/") {
		owner, name, err := github.ParseRepoRef(arg)
		if err != nil {
			return getResult{}, err
		}
		repo := catalog.Repo{Owner: owner, Repo: name}
		strategy := resolve.Strategy{Kind: resolve.StrategyGitHub, Repo: repo}

		spinner := newSpinnerWithContext(ctx, "Resolving "+repo.String()+"...")
		spinner.Start()
		v := c.newRegistry().GitHub(repo)(ctx)
		spinner.Stop()

		return getResult{Strategy: strategy.String(), Version: v}, ctx.Err()
	}

	cat, err := c.loadCatalog()
	if err != nil {
		return getResult{}, err
	}
	stack, err := cat.Lookup(arg)
	if err != nil {
		return getResult{}, err
	}

	r := c.newResolver()
	strategy, _ := r.Select(stack)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %s...", stack.Name))
	spinner.Start()
	v := r.Resolve(ctx, stack)
	spinner.Stop()

	return getResult{ID: stack.ID, Name: stack.Name, Strategy: strategy.String(), Version: v}, ctx.Err()
}
