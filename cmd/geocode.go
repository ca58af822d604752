package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/geocode"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

// geocodeCmd represents the geocode command
var geocodeCmd = &cobra.Command{
	Use:   "geocode <lat> <lon>",
	Short: "Reverse geocode a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("latitude: %w", err)
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("longitude: %w", err)
		}

		cfg := config.Load()
		client, err := geocode.New(cfg.GeocodeProvider, cfg.GeocodeToken)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return runGeocode(ctx, client, lat, lon, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)

	geocodeCmd.Flags().StringP("provider", "p", "", "Geocode provider, 'arcgis' or 'osm'")
	bindFlag(geocodeCmd, config.KeyGeocodeProvider, "provider")

	geocodeCmd.Flags().String("token", "", "Access token of the provider")
	bindFlag(geocodeCmd, config.KeyGeocodeToken, "token")
}

func runGeocode(ctx context.Context, client geocode.Client, lat, lon float64, w io.Writer) error {
	place, err := client.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, place.Label)
	if len(place.Raw) > 0 {
		_, err = w.Write(pretty.Pretty(place.Raw))
	}
	return err
}
