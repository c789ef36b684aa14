package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/journal-atlas/pkg/server"
	"github.com/de-tools/journal-atlas/pkg/services/atlas"
	"github.com/de-tools/journal-atlas/pkg/services/config"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Journal Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "journal-atlas.yaml",
		"Path to the web server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadWebConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load web config: %w", err)
	}

	profilesPath := cfg.ProfilesPath
	if profilesPath == "" {
		usr, _ := user.Current()
		profilesPath = fmt.Sprintf("%s/.journalatlas", usr.HomeDir)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Journal: `%s`", profile.Name)
	}

	explorer := atlas.NewExplorer(registry, db)

	addr := cfg.Addr
	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Atlas: explorer,
		},
	})

	return api.Start()
}
