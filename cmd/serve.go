package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long:  `Starts the HTTP server for the portfolio page, its project fragments, the palette JSON and the contact form fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}
		if cmd.Flags().Changed("profile") {
			cfg.Profile, _ = cmd.Flags().GetString("profile")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		accessLog, _ := cmd.Flags().GetBool("access-log")

		s, err := buildSite(cfg)
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		srv := server.New(server.Config{
			Port:      cfg.Port,
			Mode:      cfg.GinMode,
			AccessLog: accessLog,
		}, s)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Printf("[server] shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("[server] shutdown: %v", err)
			}
		}()

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (overrides config and PORT)")
	serveCmd.Flags().String("profile", "", "profile YAML file (defaults to the built-in profile)")
	serveCmd.Flags().Bool("access-log", true, "log page views with hashed client addresses")
	rootCmd.AddCommand(serveCmd)
}
