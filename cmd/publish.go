package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/data"
	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/publish"
	"github.com/spf13/cobra"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Copy located photos into the site and write the manifest",
	Long: `Matches every photo to its nearest track point, copies it into the
publish directory under a name derived from time and coordinates and writes
the JSON manifest grouping the photos by day.`,
	RunE: runPublishCmd,
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().BoolP("yes", "y", false, "Overwrite an existing manifest without asking")
	publishCmd.Flags().Bool("dry-run", false, "Only print the manifest, copy nothing")

	publishCmd.Flags().StringP("output", "o", "", "Publish directory")
	bindFlag(publishCmd, config.KeyPublishDirectory, "output")

	publishCmd.Flags().StringP("manifest", "m", "", "Manifest path")
	bindFlag(publishCmd, config.KeyManifestPath, "manifest")

	publishCmd.Flags().IntP("width", "w", 0, "Maximum width of published photos, 0 copies unchanged")
	bindFlag(publishCmd, config.KeyPublishWidth, "width")

	publishCmd.Flags().Duration("max-gap", 0, "Warn about photos farther than this from their track point")
	bindFlag(publishCmd, config.KeyMaxGap, "max-gap")
}

func runPublishCmd(cmd *cobra.Command, args []string) error {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		panic(err) // Should not happen
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		panic(err) // Should not happen
	}

	cfg := config.Load()

	confirm := confirmOverwrite
	if yes {
		confirm = func(string) (bool, error) { return true, nil }
	}

	return runPublish(cfg, dryRun, confirm, cmd.OutOrStdout())
}

// confirmOverwrite asks on the terminal whether path may be replaced.
func confirmOverwrite(path string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite existing manifest (%s)", path),
		Default: false,
	}

	var shouldContinue bool
	if err := survey.AskOne(prompt, &shouldContinue); err != nil {
		return false, err
	}

	return shouldContinue, nil
}

func runPublish(cfg config.Config, dryRun bool, confirm func(string) (bool, error), w io.Writer) error {
	store, err := data.NewStore(cfg)
	if err != nil {
		return err
	}

	if !dryRun && filesystem.Exists(cfg.ManifestPath) {
		ok, err := confirm(cfg.ManifestPath)
		if err != nil {
			return err
		}
		if !ok {
			log.Println("publish cancelled")
			return nil
		}
	}

	manifest, err := publish.Publish(store.Located, publish.Options{
		Directory: cfg.PublishDirectory,
		Width:     cfg.PublishWidth,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	if dryRun {
		for _, day := range manifest.Days() {
			for _, e := range manifest[day] {
				fmt.Fprintf(w, "%s  %s  %.5f,%.5f\n", day, e.Filename, e.Lat, e.Lon)
			}
		}
		return nil
	}

	if err := publish.WriteManifest(cfg.ManifestPath, manifest); err != nil {
		return err
	}

	fmt.Fprintf(w, "Published %d photos over %d days to %s\n", len(store.Located), len(manifest), cfg.PublishDirectory)
	return nil
}
