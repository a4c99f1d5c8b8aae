package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/iksnae/sessionsync/internal"
	"github.com/iksnae/sessionsync/internal/remote"
	"github.com/spf13/cobra"
)

var (
	syncWatch    bool
	syncURL      string
	syncDebounce = 5 * time.Second
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push sessions to the remote store",
	Long: `Extract sessions from all configured sources and upsert them, along
with the aggregated project view, to the configured remote store.

With --watch, keeps running and re-syncs whenever a source root changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := internal.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if syncURL != "" {
			cfg.RemoteURL = syncURL
		}
		if cfg.RemoteURL == "" {
			return fmt.Errorf("no remote URL configured (set remote_url in config or pass --url)")
		}

		client := remote.NewClient(cfg.RemoteURL, cfg.RemoteToken)

		runOnce := func() error {
			pipeline := &internal.Pipeline{Paths: cfg.StoragePaths()}
			if since > 0 {
				pipeline.Cutoff = time.Now().Add(-since)
			}
			result := pipeline.Run()
			if err := client.Push(cmd.Context(), result); err != nil {
				return err
			}
			fmt.Printf("Synced %d sessions and %d projects\n", len(result.Sessions), len(result.Projects))
			return nil
		}

		if err := runOnce(); err != nil {
			return err
		}
		if !syncWatch {
			return nil
		}

		paths := cfg.StoragePaths()
		watcher, err := internal.NewWatcher([]string{
			paths.ClaudeProjects,
			paths.GlobalStorage,
			paths.WorkspaceStorage,
		}, syncDebounce)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Close()

		internal.LogInfo("Watching for changes; press Ctrl-C to stop")
		watcher.Run(func() {
			if err := runOnce(); err != nil && err != context.Canceled {
				internal.LogError("Sync failed: %v", err)
			}
		})
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncWatch, "watch", "w", false, "Keep running and re-sync on changes")
	syncCmd.Flags().StringVar(&syncURL, "url", "", "Remote store base URL (overrides config)")
	rootCmd.AddCommand(syncCmd)
}
