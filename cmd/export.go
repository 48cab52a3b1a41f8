package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as static files",
	Long:  `Renders the page, the project fragments and the static assets into a directory that any static host can serve.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	exportCmd.Flags().String("profile", "", "profile YAML file (defaults to the built-in profile)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.Profile = p
	}

	s, err := buildSite(cfg)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	if err := s.Export(cfg.OutputDir); err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Site written to %s\n", cfg.OutputDir)
	return nil
}
