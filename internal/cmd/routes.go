package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tanvir.dev/internal/site"
)

// NewRoutesCmd creates the routes command
func NewRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			fmt.Fprintln(out, "Routes")
			fmt.Fprintln(out, "======")
			for _, rt := range site.Routes {
				fmt.Fprintf(out, "  %-16s %-16s %s\n", rt.Path, cyan(rt.Page), rt.Label)
			}
			fmt.Fprintf(out, "  %-16s %-16s\n", site.ProjectPrefix+"{id}", cyan(site.PageProjectDetail))
			fmt.Fprintf(out, "  %-16s %-16s\n", "*", yellow(site.PageError))
			return nil
		},
	}
}
