package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/sessionsync/internal"
	"github.com/iksnae/sessionsync/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to files",
	Long:  `Extract sessions from all configured sources and write each one to a file in the chosen format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		result, _, err := runPipeline()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(exportOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for _, session := range result.Sessions {
			path := filepath.Join(exportOutDir, session.ID+"."+exporter.Extension())
			f, err := os.Create(path)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			if err := exporter.Export(session, f); err != nil {
				f.Close()
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			if err := f.Close(); err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
		}

		fmt.Printf("Exported %d sessions to %s\n", len(result.Sessions), exportOutDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, md, yaml)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "sessions", "Output directory")
	rootCmd.AddCommand(exportCmd)
}
