package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tanvir.dev/internal/config"
	"tanvir.dev/internal/content"
)

// NewRootCmd creates the portfolio command tree
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio web server",
		Long: `Portfolio serves a server-rendered personal portfolio site: a home page,
about, skills, a project gallery with detail pages, and a contact page.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default is ./portfolio.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewRoutesCmd())
	rootCmd.AddCommand(NewResolveCmd())
	rootCmd.AddCommand(NewProjectsCmd())

	return rootCmd
}

// loadConfig reads the configuration named by the --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadContent reads the project registry and the page copy
func loadContent(cfg *config.Config) (*content.Bundle, error) {
	bundle, err := content.Load(content.Source(cfg.Content.Dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return bundle, nil
}
