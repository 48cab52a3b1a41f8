package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/particles"
	"github.com/Zachkp/folio/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the particle background in a desktop window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.Preview.Width, _ = cmd.Flags().GetInt("width")
		}
		if cmd.Flags().Changed("height") {
			cfg.Preview.Height, _ = cmd.Flags().GetInt("height")
		}
		// The desktop has no reduced-motion query of its own.
		pref, err := cfg.MotionPreference(false)
		if err != nil {
			return err
		}
		return preview.Run(preview.Options{
			Width:  cfg.Preview.Width,
			Height: cfg.Preview.Height,
			Config: particles.DefaultConfig(),
			Motion: pref,
		})
	},
}

func init() {
	previewCmd.Flags().Int("width", 0, "window width (defaults to preview.width from config)")
	previewCmd.Flags().Int("height", 0, "window height (defaults to preview.height from config)")
	rootCmd.AddCommand(previewCmd)
}
