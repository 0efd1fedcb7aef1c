package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonkmatsumo/resume-parser/internal/config"
	"github.com/jonkmatsumo/resume-parser/internal/server/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API server",
	Long:  "Issue an HMAC-signed bearer token for a client of the parse API, using the configured auth secret.",
	RunE:  runToken,
}

var (
	tokenConfigFile string
	tokenClientID   string
	tokenTTL        time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenConfigFile, "config", "", "Path to JSON config file")
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID the token is issued to (default: random)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(tokenConfigFile)
	if err != nil {
		return err
	}
	if cfg.AuthSecret == "" {
		return fmt.Errorf("auth secret is required (set 'auth_secret' in config or RESUME_PARSER_AUTH_SECRET)")
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		clientID, err = uuid.Parse(tokenClientID)
		if err != nil {
			return fmt.Errorf("invalid client ID: %w", err)
		}
	}

	token, err := middleware.NewTokenService(cfg.AuthSecret).GenerateToken(clientID, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
