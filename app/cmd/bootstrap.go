package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	diskMetadata "github.com/lloydmeta/raftmeta/internal/infra/disk/metadata"
	"github.com/lloydmeta/raftmeta/internal/infra/fs"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Bootstrap a data directory",
	Long:  "Creates the configured data directory if needed and writes both metadata slots so a replica can start from it",
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll(appConfig.DataDir, 0700); err != nil {
			log.Fatal().Err(err).Str("data_dir", appConfig.DataDir).Msg("Could not create the data directory")
		}

		service := diskMetadata.NewService(fs.Dir(appConfig.DataDir))
		record, err := service.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Could not bootstrap the data directory")
		}

		log.Info().
			Str("data_dir", appConfig.DataDir).
			Uint64("version", uint64(record.Version)).
			Uint64("term", uint64(record.Term)).
			Uint64("voted_for", uint64(record.VotedFor)).
			Msg("Bootstrap complete.")
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
