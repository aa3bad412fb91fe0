package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/pkg/catalog"
)

// catalogCommand creates the catalog command.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		asJSON   bool
		category string
		lint     bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the stacks in the catalog and how each is resolved",
		Long: `List the stacks in the catalog grouped by category, with the strategy
used to resolve each one. No network requests are made.

Use --lint to report version sources that are not recognised (those stacks
fall back to their repository) and stacks that cannot be resolved at all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			keep, err := stackFilter(category, nil)
			if err != nil {
				return err
			}
			cat = cat.Filter(keep)

			if lint {
				return printLint(cat)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cat.Stacks)
			}
			c.printCatalog(cat)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().StringVar(&category, "category", "", "only show one category")
	cmd.Flags().BoolVar(&lint, "lint", false, "report catalog problems instead of listing")

	return cmd
}

func (c *CLI) printCatalog(cat *catalog.Catalog) {
	r := c.newResolver()
	for _, g := range cat.Groups() {
		rows := make([][]string, 0, len(g.Stacks))
		for _, s := range g.Stacks {
			strategy, _ := r.Select(s)
			rows = append(rows, []string{s.Name, s.ID, strategy.String()})
		}
		fmt.Println(StyleTitle.Render(g.Category.Title()))
		fmt.Println(renderTable([]string{"Stack", "ID", "Resolved via"}, rows))
	}
	printDetail("%d stacks", len(cat.Stacks))
}

func printLint(cat *catalog.Catalog) error {
	issues := cat.Lint()
	if len(issues) == 0 {
		printSuccess("No catalog problems found")
		return nil
	}
	for _, issue := range issues {
		printWarning("%v", issue)
	}
	printDetail("%d problems", len(issues))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
