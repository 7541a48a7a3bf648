package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scanner/internal/ats"
	"github.com/jonathan/ats-scanner/internal/config"
	"github.com/jonathan/ats-scanner/internal/corpus"
	"github.com/jonathan/ats-scanner/internal/history"
	"github.com/jonathan/ats-scanner/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scanning resumes and comparing session scan history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:            servePort,
		HistoryCapacity: history.DefaultCapacity,
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	// Environment wins over config file for deploy-time overrides.
	if v := os.Getenv("ATS_SCANNER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ATS_SCANNER_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("ATS_SCANNER_CORPUS"); v != "" {
		cfg.CorpusPath = v
	}

	engine, err := buildEngine(cfg.CorpusPath)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		Engine:          engine,
		HistoryCapacity: cfg.HistoryCapacity,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// buildEngine wires an engine against the embedded corpus or an external
// corpus asset when one is configured.
func buildEngine(corpusPath string) (*ats.Engine, error) {
	if corpusPath == "" {
		return ats.NewDefaultEngine()
	}

	c, err := corpus.Load(corpusPath)
	if err != nil {
		return nil, err
	}
	return ats.NewEngine(c), nil
}
