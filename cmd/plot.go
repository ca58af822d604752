package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bgraf/phototrack/analysis"
	"github.com/bgraf/phototrack/chart"
	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/units"
	"github.com/spf13/cobra"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot <track file>",
	Short: "Draw speed and elevation over distance of a track segment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlotCmd,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().IntP("segment", "s", 0, "Index of the segment within the file")
	plotCmd.Flags().StringP("output", "o", "profile.png", "Output PNG file")
}

func runPlotCmd(cmd *cobra.Command, args []string) error {
	segment, err := cmd.Flags().GetInt("segment")
	if err != nil {
		panic(err) // Should not happen
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		panic(err) // Should not happen
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	err = runPlot(config.Load(), args[0], segment, chart.NewRenderer(), f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Printf("wrote %s\n", output)
	return nil
}

func runPlot(cfg config.Config, trackPath string, segment int, renderer analysis.ChartRenderer, w io.Writer) error {
	segments, err := loadSegments(cfg, []string{trackPath})
	if err != nil {
		return err
	}

	if segment < 0 || segment >= len(segments) {
		return fmt.Errorf("segment %d out of range, '%s' has %d segments", segment, trackPath, len(segments))
	}

	res, err := analysis.Analyze(segments[segment], units.FromMetricFlag(cfg.Metric))
	if err != nil {
		return err
	}

	return renderer.RenderProfile(w, res)
}
