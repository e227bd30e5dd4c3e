package cmd

import (
	"fmt"

	"github.com/go-chartview/chartview/cmd/chartview/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Show the resolved project configuration",
		Long: `Info prints the configuration the render command would use: the
project module, snapshot size, pane arrangement and axis thickness,
after applying chartview.yaml overrides.`,
		Usage: "chartview info",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("info takes no arguments")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", cfg.AppName)
	fmt.Printf("Module:  %s\n", cfg.ModulePath)
	fmt.Printf("Root:    %s\n", cfg.Root)
	fmt.Println()
	fmt.Printf("Snapshot:       %dx%d\n", cfg.Width, cfg.Height)
	fmt.Printf("Axis thickness: %dpx\n", cfg.AxisThickness)
	fmt.Printf("Pane row:       %s / %s / %s, spacing %d\n",
		cfg.PaneOptions.Direction, cfg.PaneOptions.Justify,
		cfg.PaneOptions.Align, cfg.PaneOptions.Spacing)
	return nil
}
