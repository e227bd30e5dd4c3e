package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chartview/chartview/cmd/chartview/internal/config"
	"github.com/go-chartview/chartview/pkg/chart"
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/errors"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo charting view to an SVG snapshot",
		Long: `Render builds the demo charting view, lays it out at the configured
window size, and writes the painted result as an SVG file.

The snapshot size, pane arrangement and axis strip thickness come from
chartview.yaml in the project root when present.`,
		Usage: "chartview render [-o FILE]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	output := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			output = args[i+1]
			i++
		case strings.HasPrefix(arg, "--output="):
			output = strings.TrimPrefix(arg, "--output=")
		default:
			return fmt.Errorf("unknown argument %q", arg)
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return errors.New("cmd.render", errors.KindConfig, err)
	}

	if output == "" {
		output = filepath.Join(cfg.Root, "chartview.svg")
	}

	doc := renderSnapshot(cfg)
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", output, cfg.Width, cfg.Height)
	return nil
}

// renderSnapshot builds, lays out and paints the demo tree.
func renderSnapshot(cfg *config.Resolved) string {
	queue := dispatch.NewQueue()
	view := chart.NewChartingView(queue, cfg.AppName)
	defer view.Dispose()

	view.SetPaneOptions(cfg.PaneOptions)
	view.Chart().SetAxisThickness(cfg.AxisThickness)
	view.SetBounds(geometry.Rect{Width: cfg.Width, Height: cfg.Height})
	queue.Drain()

	canvas := render.NewSVGCanvas(cfg.Width, cfg.Height)
	view.Paint(canvas)
	return canvas.Document()
}
