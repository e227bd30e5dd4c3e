// Package config resolves the optional chartview.yaml configuration of the
// demo harness, with defaults derived from the enclosing Go module.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-chartview/chartview/pkg/layout"
)

// Config represents the optional chartview.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Panes  PanesConfig  `yaml:"panes"`
	Chart  ChartConfig  `yaml:"chart"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// WindowConfig contains the snapshot surface size.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// PanesConfig configures the demo color-pane row's flex arrangement.
type PanesConfig struct {
	Direction string `yaml:"direction,omitempty"`
	Justify   string `yaml:"justify,omitempty"`
	Align     string `yaml:"align,omitempty"`
	Wrap      bool   `yaml:"wrap,omitempty"`
	Spacing   int    `yaml:"spacing,omitempty"`
}

// ChartConfig contains chart region settings.
type ChartConfig struct {
	AxisThickness int `yaml:"axis_thickness,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	Width         int
	Height        int
	PaneOptions   layout.Options
	AxisThickness int
}

// Defaults applied when chartview.yaml omits a value.
const (
	defaultWidth         = 800
	defaultHeight        = 600
	defaultAxisThickness = 100
)

// LoadOptional reads chartview.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "chartview.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read chartview.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse chartview.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads chartview.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	width := cfg.Window.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := cfg.Window.Height
	if height <= 0 {
		height = defaultHeight
	}

	thickness := cfg.Chart.AxisThickness
	if thickness <= 0 {
		thickness = defaultAxisThickness
	}

	paneOptions, err := paneOptions(cfg.Panes)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		Width:         width,
		Height:        height,
		PaneOptions:   paneOptions,
		AxisThickness: thickness,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" {
		return "chartview"
	}
	return base
}

func paneOptions(p PanesConfig) (layout.Options, error) {
	opts := layout.HorizontalItems()
	opts.Spacing = p.Spacing

	switch p.Direction {
	case "", "row":
		opts.Direction = layout.DirectionRow
	case "column":
		opts.Direction = layout.DirectionColumn
	default:
		return opts, fmt.Errorf("panes.direction: unknown value %q", p.Direction)
	}

	switch p.Justify {
	case "":
	case "start":
		opts.Justify = layout.JustifyStart
	case "end":
		opts.Justify = layout.JustifyEnd
	case "center":
		opts.Justify = layout.JustifyCenter
	case "space_between":
		opts.Justify = layout.JustifySpaceBetween
	case "space_around":
		opts.Justify = layout.JustifySpaceAround
	case "space_evenly":
		opts.Justify = layout.JustifySpaceEvenly
	case "stretch":
		opts.Justify = layout.JustifyStretch
	default:
		return opts, fmt.Errorf("panes.justify: unknown value %q", p.Justify)
	}

	switch p.Align {
	case "":
	case "stretch":
		opts.Align = layout.AlignStretch
	case "start":
		opts.Align = layout.AlignStart
	case "end":
		opts.Align = layout.AlignEnd
	case "center":
		opts.Align = layout.AlignCenter
	default:
		return opts, fmt.Errorf("panes.align: unknown value %q", p.Align)
	}

	if p.Wrap {
		opts.Wrap = layout.Wrap
	}

	return opts, nil
}
