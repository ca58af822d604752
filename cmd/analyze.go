package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bgraf/phototrack/analysis"
	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/geotrack"
	"github.com/bgraf/phototrack/units"
	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [track files or directories]",
	Short: "Summarize distance, elevation and speed of every track segment",
	Long: `Analyzes every segment of the given track files. Directories are
searched for track files. Without arguments the configured track directory is
used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(config.Load(), args, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// loadSegments reads all segments of the track files named by args, or of
// the configured track directory if args is empty.
func loadSegments(cfg config.Config, args []string) ([]geotrack.Segment, error) {
	if len(args) == 0 {
		args = []string{cfg.TrackDirectory}
	}

	paths, err := filesystem.GatherFiles(args, cfg.TrackExtensions)
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	var segments []geotrack.Segment
	for _, p := range paths {
		segs, err := geotrack.LoadTrack(p)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segs...)
	}

	return segments, nil
}

func runAnalyze(cfg config.Config, args []string, w io.Writer) error {
	segments, err := loadSegments(cfg, args)
	if err != nil {
		return err
	}

	u := units.FromMetricFlag(cfg.Metric)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(
		tw,
		"SOURCE\tPOINTS\tSTART\tDURATION\tDISTANCE (%s)\tASCENT (%s)\tDESCENT (%s)\tMAX SPEED (%s)\n",
		u.DistanceLabel(), u.ElevationLabel(), u.ElevationLabel(), u.SpeedLabel(),
	)

	var (
		total       analysis.Summary
		totalPoints int
	)
	for i, seg := range segments {
		res, err := analysis.Analyze(seg, u)
		if err != nil {
			return fmt.Errorf("analyze segment %d of '%s': %w", i, seg.Source, err)
		}

		s := analysis.Summarize(seg, res)
		total = total.Add(s)
		totalPoints += len(seg.Points)
		writeSummaryRow(tw, seg.Source, len(seg.Points), s)
	}

	if len(segments) > 1 {
		writeSummaryRow(tw, "total", totalPoints, total)
	}

	return tw.Flush()
}

func writeSummaryRow(w io.Writer, source string, points int, s analysis.Summary) {
	fmt.Fprintf(
		w,
		"%s\t%d\t%s\t%s\t%.2f\t%.0f\t%.0f\t%.1f\n",
		source,
		points,
		s.Start.Format("2006-01-02 15:04"),
		s.Duration(),
		s.Distance,
		s.Ascent,
		s.Descent,
		s.MaxSpeed,
	)
}
