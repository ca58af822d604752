package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/data"
	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/report"
	"github.com/bgraf/phototrack/units"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a day by day trip report as markdown and HTML",
	RunE:  runReportCmd,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("title", "Trip report", "Report title")

	reportCmd.Flags().StringP("output", "o", "", "Report directory")
	bindFlag(reportCmd, config.KeyReportDirectory, "output")

	reportCmd.Flags().StringP("locale", "l", "", "Locale of dates, e.g. en_US or de_DE")
	bindFlag(reportCmd, config.KeyReportLocale, "locale")
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	title, err := cmd.Flags().GetString("title")
	if err != nil {
		panic(err) // Should not happen
	}

	return runReport(config.Load(), title, cmd.OutOrStdout())
}

func parseLocale(name string) (monday.Locale, error) {
	for _, l := range monday.ListLocales() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown locale '%s'", name)
}

func runReport(cfg config.Config, title string, w io.Writer) error {
	locale, err := parseLocale(cfg.ReportLocale)
	if err != nil {
		return err
	}

	store, err := data.NewStore(cfg)
	if err != nil {
		return err
	}

	manifest, err := store.Manifest()
	if err != nil {
		return err
	}

	u := units.FromMetricFlag(cfg.Metric)
	days, err := report.BuildDays(store.Track, manifest, store.Location, u)
	if err != nil {
		return err
	}

	prefix, err := filepath.Rel(filesystem.Abs(cfg.ReportDirectory), filesystem.Abs(cfg.PublishDirectory))
	if err != nil {
		prefix = filesystem.Abs(cfg.PublishDirectory)
	}

	source, err := report.Markdown(days, report.Options{
		Title:       title,
		Locale:      locale,
		Units:       u,
		PhotoPrefix: filepath.ToSlash(prefix),
	})
	if err != nil {
		return err
	}

	doc, err := report.Write(cfg.ReportDirectory, source)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote report '%s' covering %d days to %s\n", doc.Title, len(days), cfg.ReportDirectory)
	return nil
}
