package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/catalog"
	"github.com/ayanchyaziz123/career-AI/internal/logger"
	"github.com/ayanchyaziz123/career-AI/internal/matcher"
	"github.com/ayanchyaziz123/career-AI/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring server the run command talks to",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8000, "port to listen on")
	serveCmd.Flags().String("catalog-file", "", "career catalog YAML (default is the embedded catalog)")

	viper.BindPFlag("catalog-file", serveCmd.Flags().Lookup("catalog-file"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}

	cat, err := loadCatalog(viper.GetString("catalog-file"))
	if err != nil {
		return err
	}

	log.Info("starting the scoring server",
		zap.String("version", version),
		zap.Int("careers", cat.Len()),
	)

	srv := server.New(servePort, matcher.New(cat), log)

	return srv.Start()
}

// loadCatalog reads the catalog from the given file, falling back to the
// embedded dataset when no path is configured.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load()
}
