package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
)

// Version is set via ldflags at build time and reported by --version.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio site with a particle background",
	Long: `folio renders a profile into a single-page portfolio. It serves the page
over HTTP, exports it as static files, and previews the particle background
in a desktop window.`,
	SilenceUsage: true,
	Version:      Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}
