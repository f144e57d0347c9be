package cmd

import (
	"fmt"

	"AmbientFM/storage"

	"github.com/spf13/cobra"
)

var syncPrefixFlag string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download ambient sounds from the MinIO bucket into the sound directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := cfg.MinioPrefix
		if cmd.Flags().Changed("prefix") {
			prefix = syncPrefixFlag
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "MinIO: %s, Bucket: %s, Prefix: %q\n", cfg.MinioEndpoint, cfg.MinioBucket, prefix)

		client, err := storage.NewMinioClient(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("无法连接到MinIO: %w", err)
		}

		result, err := client.SyncSounds(cmd.Context(), prefix, cfg.SoundDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "downloaded %d, unchanged %d, failed %d\n",
			len(result.Downloaded), len(result.Skipped), len(result.Failed))
		if len(result.Failed) > 0 {
			return fmt.Errorf("failed to download: %v", result.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVarP(&syncPrefixFlag, "prefix", "p", "", "object prefix to sync (MINIO_PREFIX)")
}
