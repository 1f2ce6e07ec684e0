package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/resonicon/pkg/iconset"
)

// exportCommand builds the root command, which renders and writes the iconset.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   appName + " [output-dir]",
		Short: "Resonicon renders the Resonant Graph application icon",
		Long: `Resonicon renders the Resonant Graph application icon and exports it at
every size a macOS .iconset needs.

The icon is drawn once at 1024px and resampled for 16 through 1024 pixels,
with @2x variants up to 512. Files are written to the given directory, or to
<project root>/resources/icons when none is given. The project root is the
nearest parent directory containing .git, CMakeLists.txt or go.mod.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runExport(cmd.Context(), dir)
		},
	}
}

func (c *CLI) runExport(ctx context.Context, dir string) error {
	if dir == "" {
		d, err := defaultOutputDir()
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		dir = d
	}

	style, err := c.loadStyle()
	if err != nil {
		return err
	}

	rc := c.newCache()
	defer rc.Close()

	c.Logger.Debug("exporting iconset", "dir", dir)
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering icons...")
	spinner.Start()

	stats, err := iconset.NewExporter(rc, style, c.Logger).Export(ctx, dir)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			printInfo("Export cancelled")
			return err
		}
		spinner.StopWithError("Export failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Exported %d icons", len(stats.Files)))

	printSuccess("Icons saved to %s", dir)
	for _, f := range stats.Files {
		printFile(f.Name)
	}
	printStats(len(stats.Files), stats.RenderTime, stats.CacheHit)
	return nil
}
