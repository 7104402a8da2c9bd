// Command standards-librarian runs the standards librarian MCP server.
//
// Instead of parsing, chunking, or embedding documents, the server keeps a
// curated index of which standards exist and where topics live inside them,
// and hands back PDF paths for the caller to read directly.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonwraymond/standardslibrarian/library"
	"github.com/jonwraymond/standardslibrarian/librarian"
	"github.com/jonwraymond/standardslibrarian/registry"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standards-librarian",
		Short: "MCP server for finding and reading regulatory standards",
		Long: `standards-librarian is an MCP server that helps find the right
regulatory standard, section, table, figure, or annex for a question,
then returns the PDF path for direct reading.

The index is a flat JSON file; when none exists the server seeds itself
with example entries for common medical device standards.`,
		Version:       version,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("index", "data/standards_index.json", "path to the standards index JSON file")
	cmd.Flags().String("pdf-dir", "data/pdfs", "directory containing the standards PDF files")
	cmd.Flags().String("http", "", "serve JSON-RPC over HTTP on this address instead of stdio")

	_ = viper.BindPFlag("index", cmd.Flags().Lookup("index"))
	_ = viper.BindPFlag("pdf-dir", cmd.Flags().Lookup("pdf-dir"))
	_ = viper.BindPFlag("http", cmd.Flags().Lookup("http"))
	_ = viper.BindEnv("index", "STANDARDS_INDEX_PATH")
	_ = viper.BindEnv("pdf-dir", "STANDARDS_PDF_DIR")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	indexPath := viper.GetString("index")
	pdfDir := viper.GetString("pdf-dir")

	logger.Info("loading standards index", zap.String("path", indexPath))
	lib, err := library.Load(indexPath)
	if err != nil {
		return err
	}
	lib.PDFDirectory = pdfDir

	if lib.Len() == 0 {
		logger.Info("no standards index found, creating example entries")
		library.Seed(lib)
		if err := lib.Save(indexPath); err != nil {
			return err
		}
	}
	logger.Info("library ready",
		zap.Int("standards", lib.Len()),
		zap.Int("topics", lib.TopicCount()),
	)

	reg := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{
			Name:    "standards-librarian",
			Version: version,
		},
		Logger: logger,
	})

	svc := librarian.New(lib, logger)
	if err := svc.Register(reg); err != nil {
		return err
	}

	if addr := viper.GetString("http"); addr != "" {
		logger.Info("serving HTTP", zap.String("addr", addr))
		return http.ListenAndServe(addr, registry.ServeHTTP(reg))
	}

	logger.Info("serving stdio")
	return registry.ServeStdio(cmd.Context(), reg)
}
