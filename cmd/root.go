package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/iksnae/sessionsync/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	since   time.Duration
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sessionsync",
	Short: "Extract and sync AI coding assistant chat sessions",
	Long: `sessionsync extracts chat sessions from locally-installed AI coding
assistants (Claude Code, Cursor), normalizes them into one canonical
schema, and synchronizes them to a remote store.

Supported sources:
  • Claude Code session logs (~/.claude/projects)
  • Cursor composer conversations (globalStorage)
  • Cursor chat panel conversations (workspaceStorage)

Quick Start:
  sessionsync list                  # List extracted sessions
  sessionsync projects              # Aggregated per-project activity
  sessionsync export --format md    # Export sessions as Markdown
  sessionsync sync                  # Push sessions to the remote store`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&since, "since", 0, "Only artifacts modified within this duration (e.g. 24h); 0 means everything")
}

// runPipeline loads the configuration and executes one extraction pass.
func runPipeline() (*internal.Result, *internal.Config, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	pipeline := &internal.Pipeline{Paths: cfg.StoragePaths()}
	if since > 0 {
		pipeline.Cutoff = time.Now().Add(-since)
	}

	return pipeline.Run(), cfg, nil
}
