package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/data"
	"github.com/spf13/cobra"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Print the track point matched to every photo",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMatch(config.Load(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cfg config.Config, w io.Writer) error {
	store, err := data.NewStore(cfg)
	if err != nil {
		return err
	}

	return writeMatchTable(w, store)
}

func writeMatchTable(w io.Writer, store *data.Store) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IMAGE\tTAKEN\tPOINT\tLAT\tLON\tGAP")

	for _, l := range store.Located {
		fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%.5f\t%.5f\t%s\n",
			l.Image.Name,
			l.Image.Time.Format(time.RFC3339),
			l.Index,
			l.Point.Lat,
			l.Point.Lon,
			l.Gap,
		)
	}

	return tw.Flush()
}
