package cmd

import (
	"github.com/bgraf/phototrack/cmd/serve"
	"github.com/bgraf/phototrack/config"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the manifest, the located photos per day and the photo files",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address")
	bindFlag(serveCmd, config.KeyServeAddress, "address")
}
