package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tanvir.dev/internal/site"
)

// NewProjectsCmd creates the projects command
func NewProjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the project registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bundle, err := loadContent(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold).SprintFunc()
			faint := color.New(color.Faint).SprintFunc()

			if len(bundle.Projects.Projects) == 0 {
				fmt.Fprintln(out, "No projects found")
				return nil
			}

			for i := range bundle.Projects.Projects {
				p := &bundle.Projects.Projects[i]
				fmt.Fprintf(out, "%s (%s)\n", bold(p.Title), p.ID)
				fmt.Fprintf(out, "  Page:   %s\n", site.ProjectPath(p.ID))
				fmt.Fprintf(out, "  Stack:  %s\n", strings.Join(p.Technologies, ", "))
				if p.HasLiveLink() {
					fmt.Fprintf(out, "  Live:   %s\n", p.LiveLink)
				} else {
					fmt.Fprintf(out, "  Live:   %s\n", faint("none"))
				}
				if p.HasCodeLink() {
					fmt.Fprintf(out, "  Code:   %s\n", p.CodeLink)
				} else {
					fmt.Fprintf(out, "  Code:   %s\n", faint("none"))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
