package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"forgehub/internal/render"
)

var (
	dumpOutput  string
	dumpDates   bool
	dumpPreview bool
	dumpArt     string
)

var dumpCmd = &cobra.Command{
	Use:   "dump TEXT",
	Short: "Render text and emit the level map without touching any repository",
	Long: `Renders TEXT into the calendar level map and writes it out, either as a
single line of level digits (oldest date first) or, with --dates, as one
YYYY.MM.DD:<level> line per date. The output can be fed back to
"write --import".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write the map to this file instead of stdout")
	dumpCmd.Flags().BoolVar(&dumpDates, "dates", false, "emit one dated line per day")
	dumpCmd.Flags().BoolVar(&dumpPreview, "preview", false, "print a calendar preview to stderr")
	dumpCmd.Flags().StringVar(&dumpArt, "art", "", "render a calendar drawing from this file instead of TEXT")
}

func runDump(cmd *cobra.Command, args []string) error {
	levelMap, err := dumpLevelMap(args)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if dumpOutput != "" {
		file, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("create output file %q: %w", dumpOutput, err)
		}
		defer file.Close()
		out = file
	}

	if dumpPreview {
		fmt.Fprintln(os.Stderr, levelMap.String())
	}

	if dumpDates {
		return render.WriteDated(out, levelMap)
	}
	return render.WriteLevels(out, levelMap)
}

func dumpLevelMap(args []string) (*render.LevelMap, error) {
	end := render.LastWeekEnd(time.Now())

	if dumpArt != "" {
		data, err := os.ReadFile(dumpArt)
		if err != nil {
			return nil, fmt.Errorf("read drawing %q: %w", dumpArt, err)
		}

		levels, err := render.ParseArt(string(data))
		if err != nil {
			return nil, err
		}
		return render.RenderLevels(levels, end)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("either TEXT or --art is required")
	}
	return render.RenderText(args[0], end)
}
