package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sourcesCommand creates the sources command.
func (c *CLI) sourcesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the dedicated version sources",
		Long: `List every version source a catalog entry can name in version_source,
with the kind of lookup behind it and what it queries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := c.newRegistry().Infos()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{string(info.Source), string(info.Kind), info.Target})
			}
			fmt.Println(renderTable([]string{"Source", "Kind", "Target"}, rows))
			printDetail("%d sources", len(infos))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
