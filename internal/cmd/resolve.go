package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tanvir.dev/internal/services"
	"tanvir.dev/internal/site"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Show which page each path selects",
		Long: `Resolves each path against the route table exactly as the server does.
Project detail paths are also checked against the registry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			bundle, err := loadContent(cfg)
			if err != nil {
				return err
			}
			projects := services.NewProjectService(bundle.Projects)

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()

			for _, path := range args {
				m := site.Resolve(path)
				switch m.Page {
				case site.PageError:
					fmt.Fprintf(out, "%s -> %s\n", path, red(m.Page))
				case site.PageProjectDetail:
					if p, err := projects.GetByID(m.ProjectID); err == nil {
						fmt.Fprintf(out, "%s -> %s (%s)\n", path, green(m.Page), p.Title)
					} else {
						fmt.Fprintf(out, "%s -> %s (%s)\n", path, green(m.Page), red("project not found"))
					}
				default:
					fmt.Fprintf(out, "%s -> %s\n", path, green(m.Page))
				}
			}
			return nil
		},
	}
}
