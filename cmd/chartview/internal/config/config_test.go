package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chartview/chartview/pkg/layout"
)

func writeProject(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	gomod := "module example.com/acme/plotter\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "chartview.yaml"), []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	dir := writeProject(t, "")

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.ModulePath != "example.com/acme/plotter" {
		t.Errorf("module path = %q", resolved.ModulePath)
	}
	if resolved.AppName != "plotter" {
		t.Errorf("default app name = %q, want module base", resolved.AppName)
	}
	if resolved.Width != 800 || resolved.Height != 600 {
		t.Errorf("default window = %dx%d", resolved.Width, resolved.Height)
	}
	if resolved.AxisThickness != 100 {
		t.Errorf("default axis thickness = %d", resolved.AxisThickness)
	}
	if resolved.PaneOptions.Justify != layout.JustifySpaceAround {
		t.Errorf("default pane justify = %v", resolved.PaneOptions.Justify)
	}
}

func TestResolveReadsYaml(t *testing.T) {
	dir := writeProject(t, `
app:
  name: candles
window:
  width: 1024
  height: 768
chart:
  axis_thickness: 60
panes:
  direction: row
  justify: space_between
  align: center
  wrap: true
  spacing: 12
`)

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.AppName != "candles" {
		t.Errorf("app name = %q", resolved.AppName)
	}
	if resolved.Width != 1024 || resolved.Height != 768 {
		t.Errorf("window = %dx%d", resolved.Width, resolved.Height)
	}
	if resolved.AxisThickness != 60 {
		t.Errorf("axis thickness = %d", resolved.AxisThickness)
	}
	want := layout.Options{
		Direction: layout.DirectionRow,
		Justify:   layout.JustifySpaceBetween,
		Align:     layout.AlignCenter,
		Wrap:      layout.Wrap,
		Spacing:   12,
	}
	if resolved.PaneOptions != want {
		t.Errorf("pane options = %+v, want %+v", resolved.PaneOptions, want)
	}
}

func TestResolveRejectsUnknownEnum(t *testing.T) {
	dir := writeProject(t, "panes:\n  justify: sideways\n")

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected an error for an unknown justify value")
	}
}

func TestResolveRejectsMalformedYaml(t *testing.T) {
	dir := writeProject(t, "app: [\n")

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.App.Name != "" {
		t.Errorf("missing file should yield a zero config, got %+v", cfg)
	}
}
