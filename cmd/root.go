package cmd

import (
	"fmt"
	"os"

	"github.com/bgraf/phototrack/config"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phototrack",
	Short: "Correlate photos with GPS tracks",
	Long: `Reads capture times of photos and track points of GPX/NMEA logs,
locates every photo at the nearest track point in time and publishes the
located photos for a static site.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func bindFlag(cmd *cobra.Command, key, name string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}

func bindPersistentFlag(key, name string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.phototrack.yaml)")

	rootCmd.PersistentFlags().StringP("images", "i", "", "Directory containing the photos")
	bindPersistentFlag(config.KeyImageDirectory, "images")

	rootCmd.PersistentFlags().StringP("tracks", "t", "", "Directory containing the GPX/NMEA tracks")
	bindPersistentFlag(config.KeyTrackDirectory, "tracks")

	rootCmd.PersistentFlags().String("timezone", "", "Timezone of the camera clock, 'auto' to derive it from the track")
	bindPersistentFlag(config.KeyTimezone, "timezone")

	rootCmd.PersistentFlags().Bool("metric", false, "Report distances, speeds and elevations in metric units")
	bindPersistentFlag(config.KeyMetric, "metric")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in working and home directory with name ".phototrack" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".phototrack")
	}

	config.BindEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
