package main

import (
	"github.com/spf13/cobra"

	"github.com/jonkmatsumo/resume-parser/internal/config"
	"github.com/jonkmatsumo/resume-parser/internal/observability"
	"github.com/jonkmatsumo/resume-parser/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing POST /v1/parse for resume text extraction. Bearer-token auth is enabled when an auth secret is configured.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	observability.InitLogger(cfg.LogLevel, cfg.LogFormat)

	srv := server.New(server.Config{
		Port:       cfg.Port,
		AuthSecret: cfg.AuthSecret,
	})
	return srv.Start()
}
