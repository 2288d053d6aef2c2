package cmd

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lloydmeta/raftmeta/internal/api/models/metadata"
	diskMetadata "github.com/lloydmeta/raftmeta/internal/infra/disk/metadata"
	"github.com/lloydmeta/raftmeta/internal/infra/fs"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showConfigCmd)
	showCmd.AddCommand(showMetadataCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information",
	Long:  `Sometimes you just need to know more`,
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config",
	Long:  `Renders the config that we end up using`,
	Run: func(cmd *cobra.Command, args []string) {
		out, err := json.MarshalIndent(&appConfig, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Error marshalling config to JSON")
		} else {
			log.Info().Msg(string(out))
		}
	},
}

var showMetadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show replica metadata",
	Long:  `Loads and renders the authoritative metadata record from the configured data directory`,
	Run: func(cmd *cobra.Command, args []string) {
		service := diskMetadata.NewService(fs.Dir(appConfig.DataDir))
		record, err := service.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load replica metadata")
		}
		out, err := json.MarshalIndent(metadata.FromDomainRecord(record), "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Error marshalling metadata to JSON")
		} else {
			log.Info().Msg(string(out))
		}
	},
}
