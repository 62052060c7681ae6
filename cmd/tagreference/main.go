// Command tagreference serves the template tag reference catalog as an MCP
// server over stdio or HTTP.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonwraymond/tagreference/catalog"
	"github.com/jonwraymond/tagreference/index"
	"github.com/jonwraymond/tagreference/registry"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataPath string
		httpAddr string
	)

	cmd := &cobra.Command{
		Use:     "tagreference",
		Short:   "MCP server for the template tag reference catalog",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(cmd, dataPath, httpAddr, logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&dataPath, "data", "output.json", "path to the scraped tag catalog JSON")
	cmd.Flags().StringVar(&httpAddr, "http", "", "listen address for HTTP transport (default: serve stdio)")
	return cmd
}

func run(cmd *cobra.Command, dataPath, httpAddr string, logger *zap.Logger) error {
	f, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cats, err := catalog.DecodeJSON(f)
	if err != nil {
		return err
	}
	loader, err := catalog.NewLoader(cats)
	if err != nil {
		return err
	}

	idx := index.New(loader.Load())
	stats := idx.Stats()
	logger.Info("catalog indexed",
		zap.String("data", dataPath),
		zap.Int("records", stats.Records),
		zap.Int("categories", stats.Categories),
		zap.Int("sub_categories", stats.SubCategories),
		zap.String("fingerprint", stats.Fingerprint[:12]),
	)

	reg := registry.New(idx, registry.Config{
		ServerInfo: registry.ServerInfo{Name: "tagreference", Version: version},
	})

	if httpAddr != "" {
		logger.Info("serving http", zap.String("addr", httpAddr))
		return http.ListenAndServe(httpAddr, registry.ServeHTTP(reg))
	}

	logger.Info("serving stdio")
	return registry.Serve(cmd.Context(), reg, os.Stdin, os.Stdout)
}
